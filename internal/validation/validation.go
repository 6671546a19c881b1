package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/avosch/rollbook/internal/constants"
)

// ValidateAccountName validates a single account name segment.
// Accepts any for huh/survey validator compatibility.
func ValidateAccountName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("account name must be a string")
	}

	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if strings.Contains(name, constants.FullNameSeparator) {
		return fmt.Errorf("account name cannot contain '%s' character", constants.FullNameSeparator)
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateCurrency validates an ISO 4217-style currency code.
func ValidateCurrency(val any) error {
	currency, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}

// ValidateDate validates an ISO 8601 date (YYYY-MM-DD).
func ValidateDate(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("date must be a string")
	}

	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(input)); err != nil {
		return fmt.Errorf("invalid date '%s': must be YYYY-MM-DD", input)
	}

	return nil
}

// ValidateDescription rejects blank description texts.
func ValidateDescription(val any) error {
	desc, ok := val.(string)
	if !ok {
		return fmt.Errorf("description must be a string")
	}
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}
