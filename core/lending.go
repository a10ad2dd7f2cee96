package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// CollateralInput collateral descriptor supplied by the caller
type CollateralInput struct {
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// LendingService the lending engine. Every operation is
// all-or-nothing: a failed ledger transfer or store write leaves all
// balances unchanged.
type LendingService interface {
	Initialize(ctx context.Context, ownerID, loanAssetID, collateralAssetID, oracleAssetID string, loanInterest int64) error
	DepositCollateral(ctx context.Context, userID string, input *CollateralInput) error
	Borrow(ctx context.Context, userID string, amount decimal.Decimal) error
	DepositCollateralAndBorrow(ctx context.Context, userID string, input *CollateralInput, loanAmount decimal.Decimal) error
	RecalculateLoanInterest(ctx context.Context) error
	CheckLiquidations(ctx context.Context, callerID string) error
	SetLoanInterest(ctx context.Context, callerID string, rate int64) error

	Owner(ctx context.Context) (string, error)
	LoanInterest(ctx context.Context) (int64, error)
	TotalMoneyOnLoanByUser(ctx context.Context, userID string) (decimal.Decimal, error)
	CollateralsByUser(ctx context.Context, userID string) (decimal.Decimal, error)
	Account(ctx context.Context, userID string) (*Account, error)
	Accounts(ctx context.Context) ([]*Account, error)
}
