package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/rollover"
	"github.com/avosch/rollbook/internal/store"
	"github.com/avosch/rollbook/internal/ui/views"
)

func NewBalancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances <file>",
		Short: "Show the balances a rollover would carry forward",
		Long: `Balances opens a book read-only and prints the balance snapshot the roll
command would carry into a new year: every postable balance-sheet account
with its current balance. Income, expense, trading and equity accounts
and placeholder nodes are excluded.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runBalances,
	}
}

func runBalances(cmd *cobra.Command, args []string) error {
	book, err := store.Open(args[0], store.OpenReadOnly)
	if err != nil {
		return err
	}
	defer book.Close()

	balances, err := rollover.ExtractBalances(book)
	if err != nil {
		return err
	}

	items := make([]views.BalanceItem, 0, len(balances))
	for _, name := range balances.SortedNames() {
		account, err := book.AccountByFullName(name)
		if err != nil {
			return err
		}

		currency := ""
		commodity, err := book.AccountCommodity(account)
		if err != nil {
			return err
		}
		if commodity != nil {
			currency = commodity.Code
		}

		items = append(items, views.BalanceItem{
			Name:     name,
			Type:     account.Type,
			Balance:  balances[name],
			Currency: currency,
		})
	}

	return views.NewBalanceListView().Render(items)
}
