package collateral

import (
	"context"

	"lending/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type collateralStore struct {
	db *db.DB
}

// New new collateral store
func New(db *db.DB) core.CollateralStore {
	return &collateralStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Collateral{})
		if err := tx.AutoMigrate(core.Collateral{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *collateralStore) Save(ctx context.Context, collateral *core.Collateral) error {
	return s.db.Update().Where("user_id = ? AND asset_id = ?", collateral.UserID, collateral.AssetID).FirstOrCreate(collateral).Error
}

func (s *collateralStore) Find(ctx context.Context, userID string, assetID string) (*core.Collateral, error) {
	var collateral core.Collateral
	err := s.db.View().Where("user_id = ? AND asset_id = ?", userID, assetID).First(&collateral).Error
	if store.IsErrNotFound(err) {
		return &core.Collateral{UserID: userID, AssetID: assetID}, nil
	}

	if err != nil {
		return nil, err
	}

	return &collateral, nil
}

func (s *collateralStore) Update(ctx context.Context, tx *db.DB, collateral *core.Collateral, version int64) error {
	collateral.Version++
	// map updates so zeroed amounts are written through
	updated := tx.Update().Model(core.Collateral{}).
		Where("user_id = ? AND asset_id = ? AND version = ?", collateral.UserID, collateral.AssetID, version).
		Updates(map[string]interface{}{
			"amount":  collateral.Amount,
			"version": collateral.Version,
		})
	if updated.Error != nil {
		return updated.Error
	}

	if updated.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *collateralStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := s.db.View().Model(core.Collateral{}).Order("id").Pluck("user_id", &users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
