package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Loan user loan model. Principal carries both the borrowed
// principal and the interest accrued so far.
type Loan struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:loan_idx" json:"user_id"`
	Principal decimal.Decimal `sql:"type:decimal(32,16)" json:"principal"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// LoanStore loan store interface. All and Users enumerate in
// insertion order so sweeps stay deterministic.
type LoanStore interface {
	Save(ctx context.Context, loan *Loan) error
	Find(ctx context.Context, userID string) (*Loan, error)
	Update(ctx context.Context, tx *db.DB, loan *Loan, version int64) error
	All(ctx context.Context) ([]*Loan, error)
	Users(ctx context.Context) ([]string, error)
}
