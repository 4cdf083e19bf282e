package cmd

import (
	"fmt"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/service"
	"github.com/hance08/campuspay/internal/shell"
	"github.com/hance08/campuspay/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyRunner struct {
	rt    *appState
	raw   bool
	limit int
	user  string
}

func NewHistoryCmd(rt *appState) *cobra.Command {
	runner := &historyRunner{rt: rt}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the transaction history",
		Long: `Show the transaction history of every user, oldest first.

With --raw the log is printed exactly as it is stored.`,
		Example: `  campuspay history
  campuspay history --user alice --limit 10
  campuspay history --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&runner.raw, "raw", false, "print the log text as stored")
	cmd.Flags().IntVarP(&runner.limit, "limit", "l", constants.DefaultHistoryLimit, "maximum number of transactions to display (0 = all)")
	cmd.Flags().StringVarP(&runner.user, "user", "u", "", "only show transactions involving this user")

	return cmd
}

func (r *historyRunner) Run() error {
	if r.limit < 0 {
		return fmt.Errorf("--limit can't be negative")
	}

	svc := r.rt.svc()

	if r.raw {
		raw, err := svc.Transaction.RawHistory()
		if err != nil {
			return err
		}
		views.RenderRawHistory(raw)
		return nil
	}

	filter := service.HistoryFilter{User: r.user, Limit: r.limit}
	return shell.ShowHistory(svc, filter, r.user)
}
