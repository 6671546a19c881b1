package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount string, e.g. "150", "150.5", "-3.1415".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amountStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return d, nil
}

// FormatAmount renders an amount with the number of decimal places implied by
// a commodity fraction, e.g. fraction 100 -> "12.50", fraction 1 -> "12".
func FormatAmount(amount decimal.Decimal, fraction int64) string {
	places := int32(0)
	for f := fraction; f > 1; f /= 10 {
		places++
	}
	return amount.StringFixed(places)
}
