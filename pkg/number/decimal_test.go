package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	assert.Equal(t, "1000", Decimal("1000").String())
	assert.Equal(t, "0.5", Decimal("0.5").String())
	assert.True(t, Decimal("not a number").IsZero())
	assert.True(t, Decimal("").IsZero())
}
