package store

import (
	"embed"
	"fmt"

	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/constants"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

// Open builds the repository selected by cfg.Storage.Driver.
func Open(cfg *config.Config) (Repository, error) {
	switch cfg.Storage.Driver {
	case "", constants.DriverJSON:
		return NewFileStore(cfg.UsersPath(), cfg.TransactionsPath()), nil
	case constants.DriverSQLite:
		return NewSQLiteStore(cfg.DBPath(), MigrationsFS)
	default:
		return nil, fmt.Errorf("%w: '%s' (must be %s or %s)",
			ErrUnknownDriver, cfg.Storage.Driver, constants.DriverJSON, constants.DriverSQLite)
	}
}
