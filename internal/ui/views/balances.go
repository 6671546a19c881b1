package views

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// BalanceItem is one row of the extracted balance snapshot.
type BalanceItem struct {
	Name     string
	Type     string
	Balance  decimal.Decimal
	Currency string
}

type BalanceListView struct{}

func NewBalanceListView() *BalanceListView {
	return &BalanceListView{}
}

func (v *BalanceListView) Render(items []BalanceItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No carry-forward accounts found")
		return nil
	}

	pterm.DefaultSection.Printf("Carry-forward balances")

	tableData := pterm.TableData{
		{"Account", "Type", "Balance", "Currency"},
	}

	for _, item := range items {
		balance := item.Balance.String()

		var coloredName, coloredBalance string
		switch {
		case item.Balance.IsNegative():
			coloredName = pterm.Red(item.Name)
			coloredBalance = pterm.Red(balance)
		case item.Balance.IsZero():
			coloredName = pterm.Gray(item.Name)
			coloredBalance = pterm.Gray(balance)
		default:
			coloredName = pterm.Green(item.Name)
			coloredBalance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{coloredName, item.Type, coloredBalance, item.Currency})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(items))
	return nil
}

// RenderRollSummary lists the opening transactions written by a rollover.
type RollSummaryItem struct {
	AccountName string
	Balance     decimal.Decimal
	EquityValue decimal.Decimal
	Transaction int64
}

func RenderRollSummary(items []RollSummaryItem, currency string) error {
	if len(items) == 0 {
		pterm.Warning.Println("No opening transactions were needed (all balances zero)")
		return nil
	}

	pterm.DefaultSection.Printf("Opening transactions")

	tableData := pterm.TableData{
		{"Tx", "Account", "Balance", fmt.Sprintf("Value (%s)", currency)},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.Transaction),
			item.AccountName,
			item.Balance.String(),
			item.EquityValue.String(),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Carried %d accounts into the new year\n", len(items))
	return nil
}
