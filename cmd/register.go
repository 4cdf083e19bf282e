package cmd

import (
	"fmt"

	"github.com/hance08/campuspay/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type registerRunner struct {
	rt       *appState
	username string
}

func NewRegisterCmd(rt *appState) *cobra.Command {
	runner := &registerRunner{rt: rt}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account. Every new account starts with the sign-up bonus.

The password is always asked for interactively.`,
		Example: `  campuspay register
  campuspay register -u alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&runner.username, "user", "u", "", "username for the new account")

	return cmd
}

func (r *registerRunner) Run() error {
	p := r.rt.prompter

	username := r.username
	if username == "" {
		var err error
		username, err = p.Input("Username:", validation.ValidateUsername)
		if err != nil {
			return fmt.Errorf("input cancelled: %w", err)
		}
	}

	password, err := p.Password("Password:")
	if err != nil {
		return fmt.Errorf("input cancelled: %w", err)
	}

	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	svc := r.rt.svc()
	acc, err := svc.Account.Register(username, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Registration successful! You received a %s sign-up bonus.\n",
		svc.Account.FormatAmount(acc.Balance))
	return nil
}
