package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/config"
	"github.com/avosch/rollbook/internal/ui"
	"github.com/avosch/rollbook/internal/ui/prompts"
	"github.com/avosch/rollbook/internal/validation"
)

var configFile string

func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the rollover config file",
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Interactively create a config file",
		SilenceUsage: true,
		RunE:         runConfigInit,
	}
	initCmd.Flags().StringVar(&configFile, "config-file", "", "Where to write the config (default: config.json next to the executable)")

	configCmd.AddCommand(initCmd)

	return configCmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	ui.PrintL1Title("Rollover configuration")

	defaults := config.NewDefault()
	cfg := &config.Config{}
	var err error

	cfg.EquityName, err = prompts.PromptText(
		"Equity placeholder account name:",
		"Top-level equity account that will hold the opening balances account.",
		defaults.EquityName,
		func(s string) error { return validation.ValidateAccountName(s) },
	)
	if err != nil {
		return err
	}

	cfg.EquityOpeningName, err = prompts.PromptText(
		"Opening balances account name:",
		"Created beneath the placeholder; every opening transaction settles against it.",
		defaults.EquityOpeningName,
		func(s string) error { return validation.ValidateAccountName(s) },
	)
	if err != nil {
		return err
	}

	cfg.OpeningText, err = prompts.PromptText(
		"Opening transaction description:",
		"",
		defaults.OpeningText,
		func(s string) error { return validation.ValidateDescription(s) },
	)
	if err != nil {
		return err
	}

	cfg.Currency, err = prompts.PromptCurrency(defaults.Currency)
	if err != nil {
		return err
	}
	if err := validation.ValidateCurrency(cfg.Currency); err != nil {
		return err
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Equity placeholder"), cfg.EquityName},
		{pterm.Blue("Opening balances"), cfg.EquityOpeningName},
		{pterm.Blue("Description"), cfg.OpeningText},
		{pterm.Blue("Currency"), cfg.Currency},
	}
	pterm.DefaultTable.WithData(tableData).Render()

	if _, err := os.Stat(path); err == nil {
		var confirmation bool
		confirmPrompt := &survey.Confirm{
			Message: fmt.Sprintf("Overwrite existing %s?", path),
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Config init cancelled")
			return nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	pterm.Success.Printf("Configuration saved to %s\n", path)
	return nil
}
