package oracle

import (
	"context"
	"fmt"
	"time"

	"lending/core"
	"lending/pkg/resthttp"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Config price gateway config. Quotes older than StaleAfter are
// rejected; CacheTTL must stay well below it.
type Config struct {
	EndPoint   string
	StaleAfter time.Duration
	CacheTTL   time.Duration
}

type priceService struct {
	cfg   Config
	cache gcache.Cache
}

// New new oracle price gateway
func New(cfg Config) core.OracleService {
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 5 * time.Minute
	}

	if cfg.CacheTTL <= 0 || cfg.CacheTTL > cfg.StaleAfter/2 {
		cfg.CacheTTL = 10 * time.Second
	}

	return &priceService{
		cfg:   cfg,
		cache: gcache.New(64).LRU().Build(),
	}
}

// LatestPrice pull the latest price attestation for the asset
func (s *priceService) LatestPrice(ctx context.Context, assetID string) (*core.PriceQuote, error) {
	if v, err := s.cache.Get(assetID); err == nil {
		if quote, ok := v.(*core.PriceQuote); ok {
			return quote, nil
		}
	}

	log := logger.FromContext(ctx).WithField("service", "oracle")

	url := fmt.Sprintf("%s/api/price/%s", s.cfg.EndPoint, assetID)
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		log.WithError(err).Errorln("pull price failed")
		return nil, core.ErrOracleUnavailable
	}

	var quote core.PriceQuote
	if err := resthttp.ParseResponse(resp, &quote); err != nil {
		log.WithError(err).Errorln("parse price failed")
		return nil, core.ErrOracleUnavailable
	}

	if quote.Price.LessThanOrEqual(decimal.Zero) {
		log.Errorln("invalid price:", quote.Price)
		return nil, core.ErrOracleUnavailable
	}

	if quote.AssetID == "" {
		quote.AssetID = assetID
	}

	if time.Since(quote.UpdatedAt) > s.cfg.StaleAfter {
		return nil, core.ErrStalePrice
	}

	_ = s.cache.SetWithExpire(assetID, &quote, s.cfg.CacheTTL)

	return &quote, nil
}
