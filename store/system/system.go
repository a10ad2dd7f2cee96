package system

import (
	"context"

	"lending/core"

	"github.com/fox-one/pkg/property"
)

const (
	initializedKey     = "lending.initialized"
	ownerKey           = "lending.owner"
	loanAssetKey       = "lending.loan.asset"
	collateralAssetKey = "lending.collateral.asset"
	oracleAssetKey     = "lending.oracle.asset"
	loanInterestKey    = "lending.loan.interest"
)

type systemStore struct {
	property property.Store
}

// New system store on top of the property store
func New(property property.Store) core.SystemStore {
	return &systemStore{
		property: property,
	}
}

func (s *systemStore) Initialized(ctx context.Context) (bool, error) {
	v, err := s.property.Get(ctx, initializedKey)
	if err != nil {
		return false, err
	}

	return v.Int64() > 0, nil
}

func (s *systemStore) Save(ctx context.Context, system *core.System) error {
	values := map[string]interface{}{
		ownerKey:           system.OwnerID,
		loanAssetKey:       system.LoanAssetID,
		collateralAssetKey: system.CollateralAssetID,
		oracleAssetKey:     system.OracleAssetID,
		loanInterestKey:    system.LoanInterest,
	}

	for key, value := range values {
		if err := s.property.Save(ctx, key, value); err != nil {
			return err
		}
	}

	// written last so a torn save never reads as initialized
	return s.property.Save(ctx, initializedKey, 1)
}

func (s *systemStore) Read(ctx context.Context) (*core.System, error) {
	ok, err := s.Initialized(ctx)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, core.ErrNotInitialized
	}

	var system core.System

	fields := []struct {
		key string
		set func(v property.Value)
	}{
		{ownerKey, func(v property.Value) { system.OwnerID = v.String() }},
		{loanAssetKey, func(v property.Value) { system.LoanAssetID = v.String() }},
		{collateralAssetKey, func(v property.Value) { system.CollateralAssetID = v.String() }},
		{oracleAssetKey, func(v property.Value) { system.OracleAssetID = v.String() }},
		{loanInterestKey, func(v property.Value) { system.LoanInterest = v.Int64() }},
	}

	for _, f := range fields {
		v, err := s.property.Get(ctx, f.key)
		if err != nil {
			return nil, err
		}

		f.set(v)
	}

	return &system, nil
}

func (s *systemStore) PutLoanInterest(ctx context.Context, rate int64) error {
	return s.property.Save(ctx, loanInterestKey, rate)
}
