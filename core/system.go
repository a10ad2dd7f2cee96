package core

import (
	"context"
)

// System holds the instance configuration written once at
// initialization: the privileged owner and the asset identities the
// engine accepts. Immutable afterwards except for LoanInterest,
// which only the owner may change.
type System struct {
	OwnerID           string `json:"owner_id"`
	LoanAssetID       string `json:"loan_asset_id"`
	CollateralAssetID string `json:"collateral_asset_id"`
	OracleAssetID     string `json:"oracle_asset_id"`
	// LoanInterest percentage on integer basis, 5 means 5%
	LoanInterest int64 `json:"loan_interest"`
}

// SystemStore persists the system config
type SystemStore interface {
	Initialized(ctx context.Context) (bool, error)
	Save(ctx context.Context, system *System) error
	Read(ctx context.Context) (*System, error)
	PutLoanInterest(ctx context.Context, rate int64) error
}
