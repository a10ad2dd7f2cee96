package loan

import (
	"context"

	"lending/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type loanStore struct {
	db *db.DB
}

// New new loan store
func New(db *db.DB) core.LoanStore {
	return &loanStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Loan{})
		if err := tx.AutoMigrate(core.Loan{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *loanStore) Save(ctx context.Context, loan *core.Loan) error {
	return s.db.Update().Where("user_id = ?", loan.UserID).FirstOrCreate(loan).Error
}

func (s *loanStore) Find(ctx context.Context, userID string) (*core.Loan, error) {
	var loan core.Loan
	err := s.db.View().Where("user_id = ?", userID).First(&loan).Error
	if store.IsErrNotFound(err) {
		return &core.Loan{UserID: userID}, nil
	}

	if err != nil {
		return nil, err
	}

	return &loan, nil
}

func (s *loanStore) Update(ctx context.Context, tx *db.DB, loan *core.Loan, version int64) error {
	loan.Version++
	// map updates so a fully repaid or liquidated principal is written through
	updated := tx.Update().Model(core.Loan{}).
		Where("user_id = ? AND version = ?", loan.UserID, version).
		Updates(map[string]interface{}{
			"principal": loan.Principal,
			"version":   loan.Version,
		})
	if updated.Error != nil {
		return updated.Error
	}

	if updated.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *loanStore) All(ctx context.Context) ([]*core.Loan, error) {
	var loans []*core.Loan
	if err := s.db.View().Order("id").Find(&loans).Error; err != nil {
		return nil, err
	}

	return loans, nil
}

func (s *loanStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := s.db.View().Model(core.Loan{}).Order("id").Pluck("user_id", &users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
