package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionSend    Action = "SEND"
	ActionRequest Action = "REQUEST"
)

func (a Action) Valid() bool {
	return a == ActionSend || a == ActionRequest
}

// TransactionRecord is a single immutable line of the transaction log.
// For REQUEST records Sender is the user being asked for money and
// Receiver is the user asking.
type TransactionRecord struct {
	Timestamp time.Time
	Action    Action
	Sender    string
	Receiver  string
	Amount    decimal.Decimal
}
