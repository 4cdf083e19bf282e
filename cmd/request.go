package cmd

import (
	"github.com/hance08/campuspay/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type requestRunner struct {
	rt       *appState
	username string
	from     string
	amount   string
}

func NewRequestCmd(rt *appState) *cobra.Command {
	runner := &requestRunner{rt: rt}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Ask another user for money",
		Long: `Ask another user for money.

A request is only recorded in the transaction history; no balance changes.`,
		Example: `  campuspay request -u alice --from bob --amount 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&runner.username, "user", "u", "", "your username")
	cmd.Flags().StringVarP(&runner.from, "from", "f", "", "username to request money from")
	cmd.Flags().StringVarP(&runner.amount, "amount", "a", "", "amount to request, e.g. 20")

	return cmd
}

func (r *requestRunner) Run() error {
	user, err := login(r.rt, r.username)
	if err != nil {
		return err
	}

	target, err := promptIfEmpty(r.rt.prompter, r.from, "Request from (username):")
	if err != nil {
		return err
	}

	amountStr, err := amountOrPrompt(r.rt.prompter, r.amount)
	if err != nil {
		return err
	}

	amount, err := service.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	svc := r.rt.svc()
	rec, err := svc.Transaction.Request(user, target, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Request for %s sent to %s.\n", svc.Transaction.FormatAmount(rec.Amount), rec.Sender)
	return nil
}
