package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptCurrency asks for the opening transaction currency.
func PromptCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Settlement currency for the opening transactions:").
		Description("Every opening transaction is committed in this currency; foreign balances are converted via the price database.").
		Options(
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("USD", "USD"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("CHF", "CHF"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	finalCurrency := selection
	if selection == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency code is required")
				}
				return nil
			}).
			Run()

		if err != nil {
			return "", err
		}

		finalCurrency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return finalCurrency, nil
}

// PromptText prompts for a single text value with a default shown as
// placeholder; pressing enter keeps the default.
func PromptText(title, helpText, defaultValue string, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Description(helpText).
		Placeholder(defaultValue).
		Value(&value)

	if validator != nil {
		input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil // keep the default
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	return value, nil
}
