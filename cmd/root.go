package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/cmd/price"
	"github.com/avosch/rollbook/internal/errhandler"
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := &cobra.Command{
		Use:   "rollbook",
		Short: "rollbook carries an accounting book into a new fiscal year",
		Long: `rollbook creates a new fiscal-year book from a previous year's book file:
it copies the file, purges all transactions from the copy, and inserts
opening transactions that carry forward each balance-sheet account's
ending balance.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(NewRollCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewBalancesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(price.NewPriceCmd())

	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleFatal(err)
	}
}
