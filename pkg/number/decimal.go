package number

import (
	"github.com/shopspring/decimal"
)

// Decimal parses v leniently, unparsable input reads as zero
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}
