package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/logger"
	"github.com/hance08/campuspay/internal/service"
	"github.com/hance08/campuspay/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service   *service.Service
	Store     store.Repository
	Ledger    *ledger.Ledger
	SessionID string
}

// NewApp opens the configured storage, loads the ledger once and wires the
// services, then returns App entity
func NewApp(cfg *config.Config) (*App, func(), error) {
	bonus, err := decimal.NewFromString(cfg.Ledger.SignupBonus)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid ledger.signup_bonus '%s': %w", cfg.Ledger.SignupBonus, err)
	}
	if bonus.IsNegative() {
		return nil, nil, fmt.Errorf("ledger.signup_bonus can't be negative")
	}

	repo, err := store.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	opts := []ledger.Option{ledger.WithSignupBonus(bonus)}
	if cfg.Auth.HashPasswords {
		opts = append(opts, ledger.WithCredentials(ledger.BcryptCredentials{}))
	}

	l, err := ledger.Load(repo, opts...)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	sessionID := uuid.NewString()
	log := logger.Log.WithFields(logrus.Fields{
		"session": sessionID,
		"driver":  cfg.Storage.Driver,
	})
	log.WithField("accounts", l.Len()).Debug("ledger loaded")

	svc := service.NewService(l, repo, cfg, log)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			log.WithError(err).Error("error closing storage")
		}
	}

	return &App{
		Service:   svc,
		Store:     repo,
		Ledger:    l,
		SessionID: sessionID,
	}, cleanup, nil
}
