package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Collateral user collateral model
type Collateral struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:collateral_idx" json:"user_id"`
	AssetID   string          `sql:"size:36;unique_index:collateral_idx" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,16)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// CollateralStore collateral store interface. Users enumerates in
// insertion order.
type CollateralStore interface {
	Save(ctx context.Context, collateral *Collateral) error
	Find(ctx context.Context, userID string, assetID string) (*Collateral, error)
	Update(ctx context.Context, tx *db.DB, collateral *Collateral, version int64) error
	Users(ctx context.Context) ([]string, error)
}
