package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote price attestation from the external feed. Never
// persisted; consumed at liquidation-check time only.
type PriceQuote struct {
	AssetID   string          `json:"asset_id"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OracleService price oracle gateway interface
type OracleService interface {
	LatestPrice(ctx context.Context, assetID string) (*PriceQuote, error)
}
