package cmd

import (
	"github.com/hance08/campuspay/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type sendRunner struct {
	rt       *appState
	username string
	to       string
	amount   string
}

func NewSendCmd(rt *appState) *cobra.Command {
	runner := &sendRunner{rt: rt}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send money to another user",
		Long: `Send money to another user.

The recipient must exist, the amount must be positive and not larger than
your balance. Amounts take at most two decimal places.`,
		Example: `  campuspay send -u alice --to bob --amount 30
  campuspay send -u alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&runner.username, "user", "u", "", "your username")
	cmd.Flags().StringVarP(&runner.to, "to", "t", "", "recipient's username")
	cmd.Flags().StringVarP(&runner.amount, "amount", "a", "", "amount to send, e.g. 12.50")

	return cmd
}

func (r *sendRunner) Run() error {
	user, err := login(r.rt, r.username)
	if err != nil {
		return err
	}

	recipient, err := promptIfEmpty(r.rt.prompter, r.to, "Recipient's username:")
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

	if _, err := r.rt.svc().Transaction.Send(user, recipient, amount); err != nil {
		return err
	}

	pterm.Success.Println("Payment sent!")
	return nil
}
