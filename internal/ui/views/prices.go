package views

import (
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type PriceListItem struct {
	Date      string
	Commodity string
	Currency  string
	Value     decimal.Decimal
	Source    string
}

type PriceListView struct{}

func NewPriceListView() *PriceListView {
	return &PriceListView{}
}

func (v *PriceListView) Render(items []PriceListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No price quotes found")
		return nil
	}

	pterm.DefaultSection.Printf("Price database")

	tableData := pterm.TableData{
		{"Date", "Commodity", "Currency", "Value", "Source"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			item.Date,
			item.Commodity,
			item.Currency,
			item.Value.String(),
			item.Source,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d quotes\n", len(items))
	return nil
}
