package views

import (
	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionListItem struct {
	Date     string
	Action   string
	From     string
	To       string
	Amount   string
	Involved bool
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions yet.")
		return nil
	}

	pterm.DefaultSection.Println("Transaction History")

	tableData := pterm.TableData{
		{"Date", "Action", "From", "To", "Amount"},
	}

	for _, item := range items {
		var coloredAction, coloredAmount string

		switch item.Action {
		case "SEND":
			coloredAction = pterm.Blue(item.Action)
			coloredAmount = pterm.Blue(item.Amount)
		case "REQUEST":
			coloredAction = pterm.Yellow(item.Action)
			coloredAmount = pterm.Yellow(item.Amount)
		default:
			coloredAction = item.Action
			coloredAmount = item.Amount
		}

		from, to := item.From, item.To
		if !item.Involved {
			from, to = pterm.Gray(from), pterm.Gray(to)
		}

		tableData = append(tableData, []string{
			item.Date,
			coloredAction,
			from,
			to,
			coloredAmount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}

// RenderRawHistory prints the log text the way it is stored.
func RenderRawHistory(raw string) {
	if raw == "" {
		pterm.Warning.Println("No transactions yet.")
		return
	}

	pterm.DefaultSection.Println("Transaction History")
	pterm.Print(raw)
}

// BuildTransactionItems converts log records into table rows. Rows that do
// not involve viewer are dimmed; an empty viewer highlights everything.
func BuildTransactionItems(records []*model.TransactionRecord, viewer string, format func(decimal.Decimal) string) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(records))
	for _, rec := range records {
		items = append(items, TransactionListItem{
			Date:     rec.Timestamp.Format(constants.TimestampFormat),
			Action:   string(rec.Action),
			From:     rec.Sender,
			To:       rec.Receiver,
			Amount:   format(rec.Amount),
			Involved: viewer == "" || rec.Sender == viewer || rec.Receiver == viewer,
		})
	}
	return items
}
