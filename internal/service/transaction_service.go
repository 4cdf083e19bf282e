package service

import (
	"fmt"
	"strings"

	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/model"
	"github.com/hance08/campuspay/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	ledger *ledger.Ledger
	repo   store.TransactionRepository
	config *config.Config
	log    *logrus.Entry
}

func NewTransactionService(l *ledger.Ledger, repo store.TransactionRepository, cfg *config.Config, log *logrus.Entry) *TransactionService {
	return &TransactionService{ledger: l, repo: repo, config: cfg, log: log}
}

// HistoryFilter narrows History. Zero values mean no filtering.
type HistoryFilter struct {
	User  string
	Limit int
}

// Send transfers money and appends the SEND line to the log.
func (ts *TransactionService) Send(sender, recipient string, amount decimal.Decimal) (*model.TransactionRecord, error) {
	recipient = strings.TrimSpace(recipient)
	fields := logrus.Fields{
		"from":   sender,
		"to":     recipient,
		"amount": amount.String(),
	}

	rec, err := ts.ledger.Transfer(sender, recipient, amount)
	if err != nil {
		ts.log.WithFields(fields).WithError(err).Warn("transfer rejected")
		return nil, err
	}

	if err := ts.repo.AppendTransaction(rec); err != nil {
		ts.log.WithFields(fields).WithError(err).Error("transfer saved but not logged")
		return &rec, fmt.Errorf("%w: %v", ErrLogAppend, err)
	}

	ts.log.WithFields(fields).Info("transfer completed")
	return &rec, nil
}

// Request logs that requester asks target for amount. Balances are untouched.
func (ts *TransactionService) Request(requester, target string, amount decimal.Decimal) (*model.TransactionRecord, error) {
	target = strings.TrimSpace(target)
	fields := logrus.Fields{
		"requester": requester,
		"target":    target,
		"amount":    amount.String(),
	}

	rec, err := ts.ledger.RecordRequest(target, requester, amount)
	if err != nil {
		ts.log.WithFields(fields).WithError(err).Warn("request rejected")
		return nil, err
	}

	if err := ts.repo.AppendTransaction(rec); err != nil {
		ts.log.WithFields(fields).WithError(err).Error("request not logged")
		return nil, fmt.Errorf("%w: %v", ErrLogAppend, err)
	}

	ts.log.WithFields(fields).Info("request recorded")
	return &rec, nil
}

// History returns log records in insertion order. With a limit only the most
// recent records are kept.
func (ts *TransactionService) History(filter HistoryFilter) ([]*model.TransactionRecord, error) {
	records, err := ts.repo.ListTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	if filter.User != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Sender == filter.User || rec.Receiver == filter.User {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[len(records)-filter.Limit:]
	}

	return records, nil
}

// RawHistory returns the log exactly as stored. Empty means no transactions.
func (ts *TransactionService) RawHistory() (string, error) {
	raw, err := ts.repo.RawTransactions()
	if err != nil {
		return "", fmt.Errorf("failed to read transactions: %w", err)
	}
	return raw, nil
}

func (ts *TransactionService) FormatAmount(d decimal.Decimal) string {
	return formatAmount(ts.config, d)
}
