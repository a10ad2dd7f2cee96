package core

import (
	"github.com/shopspring/decimal"
)

// Account per-user view over both books
type Account struct {
	UserID     string          `json:"user_id"`
	Collateral decimal.Decimal `json:"collateral"`
	Loan       decimal.Decimal `json:"loan"`
}
