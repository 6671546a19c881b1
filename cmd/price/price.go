package price

import (
	"github.com/spf13/cobra"
)

// NewPriceCmd groups the price database subcommands.
func NewPriceCmd() *cobra.Command {
	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Maintain a book's price database",
		Long: `The price database supplies the exchange rates used to convert foreign
balances into the opening transaction currency. Rates are quoted as the
value of one unit of the commodity in the target currency.`,
	}

	priceCmd.AddCommand(newAddCmd())
	priceCmd.AddCommand(newListCmd())

	return priceCmd
}
