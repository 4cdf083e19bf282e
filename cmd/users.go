package cmd

import (
	"github.com/hance08/campuspay/internal/ui/views"
	"github.com/spf13/cobra"
)

type usersRunner struct {
	rt *appState
}

func NewUsersCmd(rt *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users and their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &usersRunner{rt: rt}
			return runner.Run()
		},
	}
}

func (r *usersRunner) Run() error {
	svc := r.rt.svc()
	return views.NewAccountListView().Render(svc.Account.ListAccounts(), svc.Account.FormatAmount)
}
