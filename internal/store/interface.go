package store

import "github.com/hance08/campuspay/internal/model"

// AccountRepository persists the full username -> account mapping.
// SaveAccounts always receives the complete mapping and rewrites it.
type AccountRepository interface {
	LoadAccounts() (map[string]*model.Account, error)
	SaveAccounts(accounts map[string]*model.Account) error
}

// TransactionRepository is an append-only transaction log.
// A log that does not exist yet reads as empty.
type TransactionRepository interface {
	AppendTransaction(rec model.TransactionRecord) error
	ListTransactions() ([]*model.TransactionRecord, error)
	RawTransactions() (string, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository

	Close() error
}
