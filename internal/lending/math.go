package lending

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CompoundOnce applies one interest pass to a positive principal.
// principal * (100 + rate) / 100, rounded down so no value is
// created by the remainder.
func CompoundOnce(principal decimal.Decimal, ratePercent int64) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || ratePercent <= 0 {
		return principal
	}

	return principal.Mul(decimal.NewFromInt(100 + ratePercent)).Div(hundred).Floor()
}

// CollateralValue collateral amount priced in loan-token units
func CollateralValue(amount, price decimal.Decimal) decimal.Decimal {
	return amount.Mul(price)
}

// Underwater reports whether the position must be liquidated:
// collateral value strictly below the outstanding debt.
func Underwater(collateral, price, debt decimal.Decimal) bool {
	return CollateralValue(collateral, price).LessThan(debt)
}

// MaxBorrowable upper debt bound for the given collateral under the
// loan ratio policy. A non-positive ratio disables the bound.
func MaxBorrowable(collateral decimal.Decimal, ratioPercent int64) decimal.Decimal {
	if ratioPercent <= 0 {
		return decimal.Zero
	}

	return collateral.Mul(decimal.NewFromInt(ratioPercent)).Div(hundred).Floor()
}
