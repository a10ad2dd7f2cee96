package lending

import (
	"context"

	"lending/core"
	lendingmath "lending/internal/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Database is the transaction boundary the engine commits
// bookkeeping under. *db.DB satisfies it.
type Database interface {
	Tx(fn func(tx *db.DB) error) error
}

// Config engine policy knobs
type Config struct {
	// CustodyAccountID the engine's account on the token ledger
	CustodyAccountID string
	// MaxLoanRatio max percent of collateral face value that may be
	// borrowed. 0 disables the borrow-time bound.
	MaxLoanRatio int64
}

type lendingService struct {
	cfg         Config
	db          Database
	systems     core.SystemStore
	collaterals core.CollateralStore
	loans       core.LoanStore
	ledger      core.LedgerService
	oracle      core.OracleService
}

// New new lending engine
func New(
	cfg Config,
	database Database,
	systemStore core.SystemStore,
	collateralStore core.CollateralStore,
	loanStore core.LoanStore,
	ledger core.LedgerService,
	oracle core.OracleService,
) core.LendingService {
	return &lendingService{
		cfg:         cfg,
		db:          database,
		systems:     systemStore,
		collaterals: collateralStore,
		loans:       loanStore,
		ledger:      ledger,
		oracle:      oracle,
	}
}

func (s *lendingService) Initialize(ctx context.Context, ownerID, loanAssetID, collateralAssetID, oracleAssetID string, loanInterest int64) error {
	ok, err := s.systems.Initialized(ctx)
	if err != nil {
		return err
	}

	if ok {
		return core.ErrAlreadyInitialized
	}

	if ownerID == "" || loanAssetID == "" || collateralAssetID == "" || oracleAssetID == "" {
		return core.ErrInvalidAsset
	}

	if loanInterest < 0 {
		return core.ErrInvalidAmount
	}

	return s.systems.Save(ctx, &core.System{
		OwnerID:           ownerID,
		LoanAssetID:       loanAssetID,
		CollateralAssetID: collateralAssetID,
		OracleAssetID:     oracleAssetID,
		LoanInterest:      loanInterest,
	})
}

func (s *lendingService) DepositCollateral(ctx context.Context, userID string, input *core.CollateralInput) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	if input == nil || !input.Amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if input.AssetID != sys.CollateralAssetID {
		return core.ErrInvalidAsset
	}

	collateral, err := s.collaterals.Find(ctx, userID, sys.CollateralAssetID)
	if err != nil {
		return err
	}

	if collateral.ID == 0 {
		if err := s.collaterals.Save(ctx, collateral); err != nil {
			return err
		}
	}

	// pull funds first; bookkeeping commits only on success
	if err := s.ledger.TransferFrom(ctx, userID, s.cfg.CustodyAccountID, sys.CollateralAssetID, input.Amount); err != nil {
		return err
	}

	version := collateral.Version
	collateral.Amount = collateral.Amount.Add(input.Amount)

	if err := s.db.Tx(func(tx *db.DB) error {
		return s.collaterals.Update(ctx, tx, collateral, version)
	}); err != nil {
		s.refund(ctx, userID, sys.CollateralAssetID, input.Amount)
		return err
	}

	return nil
}

func (s *lendingService) Borrow(ctx context.Context, userID string, amount decimal.Decimal) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	loan, err := s.loans.Find(ctx, userID)
	if err != nil {
		return err
	}

	newDebt := loan.Principal.Add(amount)

	if s.cfg.MaxLoanRatio > 0 {
		collateral, err := s.collaterals.Find(ctx, userID, sys.CollateralAssetID)
		if err != nil {
			return err
		}

		if newDebt.GreaterThan(lendingmath.MaxBorrowable(collateral.Amount, s.cfg.MaxLoanRatio)) {
			return core.ErrInsufficientCollateral
		}
	}

	if loan.ID == 0 {
		if err := s.loans.Save(ctx, loan); err != nil {
			return err
		}
	}

	version := loan.Version
	loan.Principal = newDebt

	return s.db.Tx(func(tx *db.DB) error {
		if err := s.loans.Update(ctx, tx, loan, version); err != nil {
			return err
		}

		// payout last so a rejected transfer rolls the debt back
		return s.ledger.Transfer(ctx, userID, sys.LoanAssetID, amount)
	})
}

func (s *lendingService) DepositCollateralAndBorrow(ctx context.Context, userID string, input *core.CollateralInput, loanAmount decimal.Decimal) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	if input == nil || !input.Amount.IsPositive() || !loanAmount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if input.AssetID != sys.CollateralAssetID {
		return core.ErrInvalidAsset
	}

	collateral, err := s.collaterals.Find(ctx, userID, sys.CollateralAssetID)
	if err != nil {
		return err
	}

	loan, err := s.loans.Find(ctx, userID)
	if err != nil {
		return err
	}

	newDebt := loan.Principal.Add(loanAmount)
	if s.cfg.MaxLoanRatio > 0 {
		bound := lendingmath.MaxBorrowable(collateral.Amount.Add(input.Amount), s.cfg.MaxLoanRatio)
		if newDebt.GreaterThan(bound) {
			return core.ErrInsufficientCollateral
		}
	}

	if collateral.ID == 0 {
		if err := s.collaterals.Save(ctx, collateral); err != nil {
			return err
		}
	}

	if loan.ID == 0 {
		if err := s.loans.Save(ctx, loan); err != nil {
			return err
		}
	}

	if err := s.ledger.TransferFrom(ctx, userID, s.cfg.CustodyAccountID, sys.CollateralAssetID, input.Amount); err != nil {
		return err
	}

	collateralVersion := collateral.Version
	loanVersion := loan.Version
	collateral.Amount = collateral.Amount.Add(input.Amount)
	loan.Principal = newDebt

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.collaterals.Update(ctx, tx, collateral, collateralVersion); err != nil {
			return err
		}

		if err := s.loans.Update(ctx, tx, loan, loanVersion); err != nil {
			return err
		}

		return s.ledger.Transfer(ctx, userID, sys.LoanAssetID, loanAmount)
	}); err != nil {
		// the borrow leg failed, hand the collateral back
		s.refund(ctx, userID, sys.CollateralAssetID, input.Amount)
		return err
	}

	return nil
}

// RecalculateLoanInterest one compounding pass over every open loan,
// in insertion order. Callable by any party.
func (s *lendingService) RecalculateLoanInterest(ctx context.Context) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	loans, err := s.loans.All(ctx)
	if err != nil {
		return err
	}

	return s.db.Tx(func(tx *db.DB) error {
		for _, loan := range loans {
			if !loan.Principal.IsPositive() {
				continue
			}

			version := loan.Version
			loan.Principal = lendingmath.CompoundOnce(loan.Principal, sys.LoanInterest)
			if err := s.loans.Update(ctx, tx, loan, version); err != nil {
				return err
			}
		}

		return nil
	})
}

// CheckLiquidations owner-only sweep. The price is fetched once, up
// front; an oracle failure aborts before any account is touched.
func (s *lendingService) CheckLiquidations(ctx context.Context, callerID string) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	if callerID != sys.OwnerID {
		return core.ErrUnauthorized
	}

	loans, err := s.loans.All(ctx)
	if err != nil {
		return err
	}

	type position struct {
		loan       *core.Loan
		collateral *core.Collateral
	}

	var positions []position
	for _, loan := range loans {
		if !loan.Principal.IsPositive() {
			continue
		}

		collateral, err := s.collaterals.Find(ctx, loan.UserID, sys.CollateralAssetID)
		if err != nil {
			return err
		}

		if !collateral.Amount.IsPositive() {
			continue
		}

		positions = append(positions, position{loan: loan, collateral: collateral})
	}

	if len(positions) == 0 {
		return nil
	}

	quote, err := s.oracle.LatestPrice(ctx, sys.OracleAssetID)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx).WithField("service", "lending")

	return s.db.Tx(func(tx *db.DB) error {
		for _, p := range positions {
			if !lendingmath.Underwater(p.collateral.Amount, quote.Price, p.loan.Principal) {
				continue
			}

			log.Infoln("liquidating", p.loan.UserID, "debt", p.loan.Principal, "collateral", p.collateral.Amount)

			loanVersion := p.loan.Version
			collateralVersion := p.collateral.Version
			p.loan.Principal = decimal.Zero
			p.collateral.Amount = decimal.Zero

			if err := s.loans.Update(ctx, tx, p.loan, loanVersion); err != nil {
				return err
			}

			if err := s.collaterals.Update(ctx, tx, p.collateral, collateralVersion); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *lendingService) SetLoanInterest(ctx context.Context, callerID string, rate int64) error {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return err
	}

	if callerID != sys.OwnerID {
		return core.ErrUnauthorized
	}

	if rate < 0 {
		return core.ErrInvalidAmount
	}

	return s.systems.PutLoanInterest(ctx, rate)
}

func (s *lendingService) Owner(ctx context.Context) (string, error) {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return "", err
	}

	return sys.OwnerID, nil
}

func (s *lendingService) LoanInterest(ctx context.Context) (int64, error) {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return 0, err
	}

	return sys.LoanInterest, nil
}

func (s *lendingService) TotalMoneyOnLoanByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	loan, err := s.loans.Find(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return loan.Principal, nil
}

func (s *lendingService) CollateralsByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	sys, err := s.systems.Read(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	collateral, err := s.collaterals.Find(ctx, userID, sys.CollateralAssetID)
	if err != nil {
		return decimal.Zero, err
	}

	return collateral.Amount, nil
}

func (s *lendingService) Account(ctx context.Context, userID string) (*core.Account, error) {
	collateral, err := s.CollateralsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	loan, err := s.TotalMoneyOnLoanByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &core.Account{
		UserID:     userID,
		Collateral: collateral,
		Loan:       loan,
	}, nil
}

// Accounts every account known to the ledger, borrowers first, each
// side in insertion order.
func (s *lendingService) Accounts(ctx context.Context) ([]*core.Account, error) {
	borrowers, err := s.loans.Users(ctx)
	if err != nil {
		return nil, err
	}

	holders, err := s.collaterals.Users(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []*core.Account
	for _, userID := range append(borrowers, holders...) {
		if seen[userID] {
			continue
		}
		seen[userID] = true

		account, err := s.Account(ctx, userID)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// refund best-effort compensation after funds moved in but
// bookkeeping did not commit
func (s *lendingService) refund(ctx context.Context, userID, assetID string, amount decimal.Decimal) {
	if err := s.ledger.Transfer(ctx, userID, assetID, amount); err != nil {
		logger.FromContext(ctx).WithField("service", "lending").
			Errorln("refund failed:", userID, assetID, amount, err)
	}
}
