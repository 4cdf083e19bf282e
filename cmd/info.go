package cmd

import (
	"os"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	rt *appState
}

func NewInfoCmd(rt *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, data file paths, and ledger totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{rt: rt}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.rt.cfg
	svc := r.rt.svc()

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	driver := cfg.Storage.Driver
	if driver == "" {
		driver = constants.DriverJSON
	}

	var paths []string
	if driver == constants.DriverSQLite {
		paths = []string{cfg.DBPath()}
	} else {
		paths = []string{cfg.UsersPath(), cfg.TransactionsPath()}
	}

	exists := make([]bool, len(paths))
	for i, p := range paths {
		_, err := os.Stat(p)
		exists[i] = err == nil
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		Driver:       driver,
		DataPaths:    paths,
		DataExists:   exists,
		Users:        len(svc.Account.ListAccounts()),
		TotalBalance: svc.Account.FormatAmount(svc.Account.TotalBalance()),
		HashPassword: cfg.Auth.HashPasswords,
	}

	return views.RenderSystemInfo(items)
}
