package price

import (
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/store"
	"github.com/avosch/rollbook/internal/ui/views"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "list <file>",
		Short:        "List the recorded exchange rate quotes",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runPriceList,
	}
}

func runPriceList(cmd *cobra.Command, args []string) error {
	book, err := store.Open(args[0], store.OpenReadOnly)
	if err != nil {
		return err
	}
	defer book.Close()

	prices, err := book.Prices()
	if err != nil {
		return err
	}

	codes := make(map[int64]string)
	code := func(id int64) (string, error) {
		if c, ok := codes[id]; ok {
			return c, nil
		}
		commodity, err := book.CommodityByID(id)
		if err != nil {
			return "", err
		}
		codes[id] = commodity.Code
		return commodity.Code, nil
	}

	items := make([]views.PriceListItem, 0, len(prices))
	for _, p := range prices {
		commodityCode, err := code(p.CommodityID)
		if err != nil {
			return err
		}
		currencyCode, err := code(p.CurrencyID)
		if err != nil {
			return err
		}

		items = append(items, views.PriceListItem{
			Date:      p.QuoteDate,
			Commodity: commodityCode,
			Currency:  currencyCode,
			Value:     p.Value,
			Source:    p.Source,
		})
	}

	return views.NewPriceListView().Render(items)
}
