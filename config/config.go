package config

import (
	"github.com/fox-one/pkg/store/db"
)

// Config lending node config
type Config struct {
	DB      db.Config `json:"db"`
	API     API       `json:"api"`
	Ledger  Ledger    `json:"ledger"`
	Oracle  Oracle    `json:"oracle"`
	Lending Lending   `json:"lending"`
	Worker  Worker    `json:"worker"`
}

// API api server config
type API struct {
	Port int `json:"port"`
}

// Ledger token ledger config. AccountID is the custody account the
// engine holds collateral and loan-token liquidity in.
type Ledger struct {
	EndPoint  string `json:"end_point"`
	AccountID string `json:"account_id"`
}

// Oracle price oracle config. Durations are strings like "5m".
type Oracle struct {
	EndPoint   string `json:"end_point"`
	StaleAfter string `json:"stale_after"`
	CacheTTL   string `json:"cache_ttl"`
}

// Lending engine policy config
type Lending struct {
	// MaxLoanRatio max percent of collateral face value that may be
	// borrowed; 0 disables the borrow-time bound
	MaxLoanRatio int64 `json:"max_loan_ratio"`
}

// Worker sweep schedules, cron specs
type Worker struct {
	InterestSpec    string `json:"interest_spec"`
	LiquidationSpec string `json:"liquidation_spec"`
}
