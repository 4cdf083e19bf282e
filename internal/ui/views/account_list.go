package views

import (
	"github.com/hance08/campuspay/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account, format func(decimal.Decimal) string) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No users registered yet.")
		return nil
	}

	tableData := pterm.TableData{{"User", "Balance"}}

	total := decimal.Zero
	for _, acc := range accounts {
		balance := format(acc.Balance)
		if acc.Balance.IsZero() {
			balance = pterm.Gray(balance)
		} else {
			balance = pterm.Green(balance)
		}
		tableData = append(tableData, []string{acc.Username, balance})
		total = total.Add(acc.Balance)
	}

	pterm.DefaultSection.Println("Users")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d users, %s in circulation\n", len(accounts), format(total))

	return nil
}
