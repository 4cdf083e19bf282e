package service

import (
	"strings"

	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/model"
	"github.com/hance08/campuspay/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountService struct {
	ledger *ledger.Ledger
	config *config.Config
	log    *logrus.Entry
}

func NewAccountService(l *ledger.Ledger, cfg *config.Config, log *logrus.Entry) *AccountService {
	return &AccountService{ledger: l, config: cfg, log: log}
}

// Register validates the input and creates the account with the sign-up bonus.
func (as *AccountService) Register(username, password string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if err := validation.ValidateRegistration(validation.Registration{
		Username: username,
		Password: password,
	}); err != nil {
		return nil, err
	}

	acc, err := as.ledger.Register(username, password)
	if err != nil {
		as.log.WithFields(logrus.Fields{"user": username}).WithError(err).Warn("registration rejected")
		return nil, err
	}

	as.log.WithFields(logrus.Fields{
		"user":    username,
		"balance": acc.Balance.String(),
	}).Info("account registered")

	return acc, nil
}

func (as *AccountService) Login(username, password string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	acc, err := as.ledger.Authenticate(username, password)
	if err != nil {
		as.log.WithFields(logrus.Fields{"user": username}).Warn("login failed")
		return nil, err
	}

	as.log.WithFields(logrus.Fields{"user": username}).Info("login")
	return acc, nil
}

func (as *AccountService) GetBalance(username string) (decimal.Decimal, error) {
	return as.ledger.Balance(username)
}

func (as *AccountService) GetBalanceFormatted(username string) (string, error) {
	balance, err := as.ledger.Balance(username)
	if err != nil {
		return "", err
	}
	return formatAmount(as.config, balance), nil
}

func (as *AccountService) ListAccounts() []*model.Account {
	return as.ledger.Accounts()
}

func (as *AccountService) TotalBalance() decimal.Decimal {
	return as.ledger.TotalBalance()
}

func (as *AccountService) FormatAmount(d decimal.Decimal) string {
	return formatAmount(as.config, d)
}
