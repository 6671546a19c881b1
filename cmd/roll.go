package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/config"
	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/rollover"
	"github.com/avosch/rollbook/internal/ui/views"
	"github.com/avosch/rollbook/internal/validation"
)

var (
	rollConfigFile  string
	rollOpeningDate string
)

func NewRollCmd() *cobra.Command {
	rollCmd := &cobra.Command{
		Use:   "roll <previous-file> <new-file>",
		Short: "Create a new fiscal-year book with opening transactions",
		Long: `Roll copies the previous year's book file to a new path, deletes every
transaction from the copy, and writes one opening transaction per
balance-sheet account carrying its ending balance forward. The target
file must not already exist.

Example: rollbook roll books/2025.book books/2026.book --opening-date 2026-01-01`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         runRoll,
	}

	rollCmd.Flags().StringVar(&rollConfigFile, "config-file", "", "Path to JSON config file (default: config.json next to the executable)")
	rollCmd.Flags().StringVar(&rollOpeningDate, "opening-date", "", "Opening transaction date in ISO 8601 format (default: Jan 1 of the current year)")

	return rollCmd
}

func runRoll(cmd *cobra.Command, args []string) error {
	previousFile, newFile := args[0], args[1]

	openingDate, err := resolveOpeningDate(rollOpeningDate)
	if err != nil {
		return err
	}

	configPath := rollConfigFile
	if configPath == "" {
		if configPath, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	entries, err := rollover.Run(previousFile, newFile, openingDate, rollover.Params{
		EquityName:        cfg.EquityName,
		EquityOpeningName: cfg.EquityOpeningName,
		Description:       cfg.OpeningText,
		Currency:          cfg.Currency,
	})
	if err != nil {
		return err
	}

	items := make([]views.RollSummaryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, views.RollSummaryItem{
			AccountName: entry.AccountName,
			Balance:     entry.Balance,
			EquityValue: entry.EquityValue,
			Transaction: entry.TransactionID,
		})
	}

	return views.RenderRollSummary(items, cfg.Currency)
}

func resolveOpeningDate(input string) (time.Time, error) {
	if input == "" {
		now := time.Now()
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local), nil
	}

	if err := validation.ValidateDate(input); err != nil {
		return time.Time{}, err
	}

	return time.Parse(constants.DateFormat, strings.TrimSpace(input))
}
