package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerService is the external fungible-asset ledger the engine
// delegates token movement to. TransferFrom requires prior allowance
// from the owner on the ledger side; Mint is ops and test tooling.
type LedgerService interface {
	Transfer(ctx context.Context, recipient, assetID string, amount decimal.Decimal) error
	TransferFrom(ctx context.Context, owner, recipient, assetID string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, owner, assetID string) (decimal.Decimal, error)
	Mint(ctx context.Context, recipient, assetID string, amount decimal.Decimal) error
}
