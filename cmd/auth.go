package cmd

import (
	"fmt"

	"github.com/hance08/campuspay/internal/ui/prompts"
	"github.com/hance08/campuspay/internal/validation"
)

// login authenticates username, prompting for it when the flag was empty.
// The password is always prompted so it never lands in shell history.
func login(rt *appState, username string) (string, error) {
	if username == "" {
		var err error
		username, err = rt.prompter.Input("Username:", validation.ValidateNotEmpty("username"))
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
	}

	password, err := rt.prompter.Password("Password:")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	acc, err := rt.svc().Account.Login(username, password)
	if err != nil {
		return "", err
	}
	return acc.Username, nil
}

// promptIfEmpty returns value, or asks for it with title when it is empty.
func promptIfEmpty(p prompts.Prompter, value, title string) (string, error) {
	if value != "" {
		return value, nil
	}

	v, err := p.Input(title, validation.ValidateNotEmpty("username"))
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return v, nil
}

// amountOrPrompt returns the --amount flag, or asks for it when it was not set.
func amountOrPrompt(p prompts.Prompter, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	v, err := p.Amount("Amount ($):")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return v, nil
}
