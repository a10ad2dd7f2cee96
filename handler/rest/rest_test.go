package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lending/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	owner       string
	rate        int64
	deposited   decimal.Decimal
	borrowed    decimal.Decimal
	liquidated  bool
	lastCaller  string
	lastAssetID string
}

func (f *fakeEngine) Initialize(ctx context.Context, ownerID, loanAssetID, collateralAssetID, oracleAssetID string, loanInterest int64) error {
	return nil
}

func (f *fakeEngine) DepositCollateral(ctx context.Context, userID string, input *core.CollateralInput) error {
	f.lastCaller = userID
	f.lastAssetID = input.AssetID
	if !input.Amount.IsPositive() {
		return core.ErrInvalidAmount
	}
	f.deposited = f.deposited.Add(input.Amount)
	return nil
}

func (f *fakeEngine) Borrow(ctx context.Context, userID string, amount decimal.Decimal) error {
	f.lastCaller = userID
	f.borrowed = f.borrowed.Add(amount)
	return nil
}

func (f *fakeEngine) DepositCollateralAndBorrow(ctx context.Context, userID string, input *core.CollateralInput, loanAmount decimal.Decimal) error {
	if err := f.DepositCollateral(ctx, userID, input); err != nil {
		return err
	}
	return f.Borrow(ctx, userID, loanAmount)
}

func (f *fakeEngine) RecalculateLoanInterest(ctx context.Context) error {
	return nil
}

func (f *fakeEngine) CheckLiquidations(ctx context.Context, callerID string) error {
	if callerID != f.owner {
		return core.ErrUnauthorized
	}
	f.liquidated = true
	return nil
}

func (f *fakeEngine) SetLoanInterest(ctx context.Context, callerID string, rate int64) error {
	if callerID != f.owner {
		return core.ErrUnauthorized
	}
	f.rate = rate
	return nil
}

func (f *fakeEngine) Owner(ctx context.Context) (string, error) {
	return f.owner, nil
}

func (f *fakeEngine) LoanInterest(ctx context.Context) (int64, error) {
	return f.rate, nil
}

func (f *fakeEngine) TotalMoneyOnLoanByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.borrowed, nil
}

func (f *fakeEngine) CollateralsByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.deposited, nil
}

func (f *fakeEngine) Account(ctx context.Context, userID string) (*core.Account, error) {
	return &core.Account{UserID: userID, Collateral: f.deposited, Loan: f.borrowed}, nil
}

func (f *fakeEngine) Accounts(ctx context.Context) ([]*core.Account, error) {
	if f.lastCaller == "" {
		return nil, nil
	}

	account, _ := f.Account(ctx, f.lastCaller)
	return []*core.Account{account}, nil
}

func request(t *testing.T, handler http.Handler, method, target, user, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		r.Header.Set(userHeader, user)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestDepositAndQueries(t *testing.T) {
	engine := &fakeEngine{owner: "owner", rate: 5}
	handler := Handle(engine)

	w := request(t, handler, http.MethodPost, "/loans/quick", "alice",
		`{"asset_id":"btz","amount":"2000","loan_amount":"1000"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "alice", engine.lastCaller)
	assert.Equal(t, "btz", engine.lastAssetID)

	w = request(t, handler, http.MethodGet, "/users/alice/loan", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1000")

	w = request(t, handler, http.MethodGet, "/users/alice/collateral", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2000")

	w = request(t, handler, http.MethodGet, "/system", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner")

	w = request(t, handler, http.MethodGet, "/accounts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestDepositInvalidAmount(t *testing.T) {
	engine := &fakeEngine{owner: "owner"}
	handler := Handle(engine)

	w := request(t, handler, http.MethodPost, "/collaterals", "alice",
		`{"asset_id":"btz","amount":"0"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLiquidationsAuth(t *testing.T) {
	engine := &fakeEngine{owner: "owner"}
	handler := Handle(engine)

	w := request(t, handler, http.MethodPost, "/liquidations/check", "alice", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, engine.liquidated)

	w = request(t, handler, http.MethodPost, "/liquidations/check", "owner", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, engine.liquidated)
}

func TestSetInterest(t *testing.T) {
	engine := &fakeEngine{owner: "owner", rate: 5}
	handler := Handle(engine)

	w := request(t, handler, http.MethodPost, "/interest", "owner", `{"rate":7}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), engine.rate)

	w = request(t, handler, http.MethodPost, "/interest", "eve", `{"rate":9}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(7), engine.rate)
}
