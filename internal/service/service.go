package service

import (
	"errors"
	"fmt"

	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/logger"
	"github.com/hance08/campuspay/internal/store"
	"github.com/hance08/campuspay/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrLogAppend means the ledger change is saved but the transaction log
// line could not be written.
var ErrLogAppend = errors.New("failed to record transaction")

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(l *ledger.Ledger, txRepo store.TransactionRepository, cfg *config.Config, log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.NewEntry(logger.Log)
	}

	return &Service{
		Account:     NewAccountService(l, cfg, log),
		Transaction: NewTransactionService(l, txRepo, cfg, log),
		Config:      cfg,
	}
}

// ParseAmount parses user input. Anything that is not a usable amount is
// reported as ledger.ErrInvalidAmount.
func ParseAmount(input string) (decimal.Decimal, error) {
	d, err := utils.ParseAmount(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ledger.ErrInvalidAmount, err)
	}
	return d, nil
}

func formatAmount(cfg *config.Config, d decimal.Decimal) string {
	return utils.FormatAmount(d, cfg.Ledger.CurrencySymbol)
}
