package cmd

import (
	"lending/core"
	ledgerservice "lending/service/ledger"
	lendingservice "lending/service/lending"
	oracleservice "lending/service/oracle"
	"lending/store/collateral"
	"lending/store/loan"
	"lending/store/system"

	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/spf13/cast"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

// ---------------store-----------------------------------------

func provideSystemStore(db *db.DB) core.SystemStore {
	return system.New(propertystore.New(db))
}

func provideCollateralStore(db *db.DB) core.CollateralStore {
	return collateral.New(db)
}

func provideLoanStore(db *db.DB) core.LoanStore {
	return loan.New(db)
}

// ------------------service------------------------------------

func provideLedgerService() core.LedgerService {
	return ledgerservice.New(ledgerservice.Config{
		EndPoint:  cfg.Ledger.EndPoint,
		AccountID: cfg.Ledger.AccountID,
	})
}

func provideOracleService() core.OracleService {
	return oracleservice.New(oracleservice.Config{
		EndPoint:   cfg.Oracle.EndPoint,
		StaleAfter: cast.ToDuration(cfg.Oracle.StaleAfter),
		CacheTTL:   cast.ToDuration(cfg.Oracle.CacheTTL),
	})
}

func provideLendingService(database *db.DB) core.LendingService {
	return lendingservice.New(
		lendingservice.Config{
			CustodyAccountID: cfg.Ledger.AccountID,
			MaxLoanRatio:     cfg.Lending.MaxLoanRatio,
		},
		database,
		provideSystemStore(database),
		provideCollateralStore(database),
		provideLoanStore(database),
		provideLedgerService(),
		provideOracleService(),
	)
}
