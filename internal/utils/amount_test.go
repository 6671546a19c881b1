package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	for _, input := range []string{"150", "150.5", "-3.1415", " 42 "} {
		d, err := ParseAmount(input)
		require.NoError(t, err, input)
		assert.False(t, d.IsZero() && input != "0")
	}

	_, err := ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.50", FormatAmount(decimal.RequireFromString("12.5"), 100))
	assert.Equal(t, "12", FormatAmount(decimal.RequireFromString("12.4"), 1))
	assert.Equal(t, "-0.10", FormatAmount(decimal.RequireFromString("-0.1"), 100))
	assert.Equal(t, "1.250", FormatAmount(decimal.RequireFromString("1.25"), 1000))
}
