package model

import "github.com/shopspring/decimal"

type Account struct {
	Username string
	Password string
	Balance  decimal.Decimal
}

// Clone returns a copy that callers may modify freely.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
