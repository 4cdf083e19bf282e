package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrTargetNotFound     = errors.New("user not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotFound    = errors.New("account not found")
)

// LoadError reports a snapshot that could not be turned into a ledger.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load accounts: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
