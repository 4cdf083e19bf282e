package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/service"
	"github.com/hance08/campuspay/internal/utils"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message turns an operation error into the line shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, ledger.ErrDuplicateUsername):
		return "Username already exists!"
	case errors.Is(err, ledger.ErrInvalidCredentials):
		return "Invalid credentials."
	case errors.Is(err, ledger.ErrRecipientNotFound):
		return "Recipient not found."
	case errors.Is(err, ledger.ErrTargetNotFound):
		return "User not found."
	case errors.Is(err, utils.ErrNotANumber), errors.Is(err, utils.ErrEmptyAmount):
		return "Amount must be a number."
	case errors.Is(err, utils.ErrTooPrecise):
		return "Amount can have at most two decimal places."
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Amount must be positive."
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, service.ErrLogAppend):
		return "Saved, but the transaction history could not be updated: " + err.Error()
	default:
		return capitalize(err.Error())
	}
}

// HandleError reports a failed operation. It never exits; the caller's
// menu loop keeps running.
func HandleError(err error) {
	if err == nil {
		return
	}

	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}

	pterm.Error.Println(Message(err))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
