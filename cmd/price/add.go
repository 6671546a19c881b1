package price

import (
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
	"github.com/avosch/rollbook/internal/utils"
	"github.com/avosch/rollbook/internal/validation"
)

var addDate string

func newAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <file> <commodity> <currency> <value>",
		Short: "Record an exchange rate quote",
		Long: `Add records the value of one unit of <commodity> in <currency> on the
quote date.

Example: rollbook price add books/2025.book USD EUR 0.92 --date 2025-12-31`,
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE:         runPriceAdd,
	}

	addCmd.Flags().StringVar(&addDate, "date", "", "Quote date in ISO 8601 format (default: today)")

	return addCmd
}

func runPriceAdd(cmd *cobra.Command, args []string) error {
	path := args[0]
	commodityCode := strings.ToUpper(strings.TrimSpace(args[1]))
	currencyCode := strings.ToUpper(strings.TrimSpace(args[2]))

	if err := validation.ValidateCurrency(commodityCode); err != nil {
		return err
	}
	if err := validation.ValidateCurrency(currencyCode); err != nil {
		return err
	}

	value, err := utils.ParseAmount(args[3])
	if err != nil {
		return err
	}

	date := time.Now()
	if addDate != "" {
		if err := validation.ValidateDate(addDate); err != nil {
			return err
		}
		if date, err = time.Parse(constants.DateFormat, strings.TrimSpace(addDate)); err != nil {
			return err
		}
	}

	book, err := store.Open(path, store.OpenNormal)
	if err != nil {
		return err
	}
	defer book.Close()

	commodity, err := book.CommodityByCode(constants.NamespaceCurrency, commodityCode)
	if err != nil {
		return err
	}
	currency, err := book.CommodityByCode(constants.NamespaceCurrency, currencyCode)
	if err != nil {
		return err
	}

	if _, err := book.AddPrice(commodity.ID, currency.ID, date, value, constants.PriceSourceUser); err != nil {
		return err
	}
	if err := book.Save(); err != nil {
		return err
	}

	pterm.Success.Printf("Recorded %s/%s = %s on %s\n",
		commodityCode, currencyCode, value.String(), date.Format(constants.DateFormat))
	return nil
}
