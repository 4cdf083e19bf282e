package cmd

import (
	"github.com/hance08/campuspay/internal/ui/views"
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	rt       *appState
	username string
}

func NewBalanceCmd(rt *appState) *cobra.Command {
	runner := &balanceRunner{rt: rt}

	cmd := &cobra.Command{
		Use:     "balance",
		Short:   "Show your balance",
		Example: `  campuspay balance -u alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&runner.username, "user", "u", "", "your username")

	return cmd
}

func (r *balanceRunner) Run() error {
	user, err := login(r.rt, r.username)
	if err != nil {
		return err
	}

	balance, err := r.rt.svc().Account.GetBalanceFormatted(user)
	if err != nil {
		return err
	}

	views.RenderBalance(user, balance)
	return nil
}
