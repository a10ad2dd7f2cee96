package ledger

import (
	"context"
	"fmt"

	"lending/core"
	"lending/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
	"github.com/shopspring/decimal"
)

// Config ledger client config. AccountID is the engine's own custody
// account on the token ledger.
type Config struct {
	EndPoint  string `json:"end_point"`
	AccountID string `json:"account_id"`
}

type ledgerService struct {
	cfg Config
}

// New new token ledger client
func New(cfg Config) core.LedgerService {
	return &ledgerService{
		cfg: cfg,
	}
}

type transferReq struct {
	TraceID   string          `json:"trace_id"`
	Sender    string          `json:"sender"`
	Recipient string          `json:"recipient"`
	AssetID   string          `json:"asset_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type transferResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *ledgerService) Transfer(ctx context.Context, recipient, assetID string, amount decimal.Decimal) error {
	return s.transfer(ctx, &transferReq{
		TraceID:   uuid.New(),
		Sender:    s.cfg.AccountID,
		Recipient: recipient,
		AssetID:   assetID,
		Amount:    amount,
	})
}

func (s *ledgerService) TransferFrom(ctx context.Context, owner, recipient, assetID string, amount decimal.Decimal) error {
	return s.transfer(ctx, &transferReq{
		TraceID:   uuid.New(),
		Sender:    owner,
		Recipient: recipient,
		AssetID:   assetID,
		Amount:    amount,
	})
}

func (s *ledgerService) transfer(ctx context.Context, req *transferReq) error {
	log := logger.FromContext(ctx).WithField("service", "ledger")

	url := fmt.Sprintf("%s/api/transfers", s.cfg.EndPoint)
	resp, err := resthttp.Request(ctx).SetBody(req).Post(url)
	if err != nil {
		log.WithError(err).Errorln("transfer request failed")
		return core.ErrTransferFailed
	}

	var result transferResp
	if err := resthttp.ParseResponse(resp, &result); err != nil {
		log.WithError(err).Errorln("transfer rejected")
		return core.ErrTransferFailed
	}

	if !result.Success {
		log.Errorln("transfer rejected:", result.Message)
		return core.ErrTransferFailed
	}

	return nil
}

func (s *ledgerService) BalanceOf(ctx context.Context, owner, assetID string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/accounts/%s/assets/%s", s.cfg.EndPoint, owner, assetID)
	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return decimal.Zero, err
	}

	var result struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := resthttp.ParseResponse(resp, &result); err != nil {
		return decimal.Zero, err
	}

	return result.Balance, nil
}

// Mint ops and test tooling only
func (s *ledgerService) Mint(ctx context.Context, recipient, assetID string, amount decimal.Decimal) error {
	url := fmt.Sprintf("%s/api/mint", s.cfg.EndPoint)
	resp, err := resthttp.Request(ctx).SetBody(&transferReq{
		TraceID:   uuid.New(),
		Recipient: recipient,
		AssetID:   assetID,
		Amount:    amount,
	}).Post(url)
	if err != nil {
		return err
	}

	var result transferResp
	if err := resthttp.ParseResponse(resp, &result); err != nil {
		return err
	}

	if !result.Success {
		return core.ErrTransferFailed
	}

	return nil
}
