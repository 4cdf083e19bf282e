package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/campuspay/internal/app"
	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/errhandler"
	"github.com/hance08/campuspay/internal/logger"
	"github.com/hance08/campuspay/internal/service"
	"github.com/hance08/campuspay/internal/shell"
	"github.com/hance08/campuspay/internal/ui"
	"github.com/hance08/campuspay/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// appState carries what PersistentPreRunE builds so that subcommands can be
// constructed before flags are parsed.
type appState struct {
	cfgFile string
	dataDir string

	cfg      *config.Config
	app      *app.App
	prompter prompts.Prompter
	cleanups []func()
}

func (r *appState) svc() *service.Service {
	return r.app.Service
}

func (r *appState) close() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
}

func Execute() {
	ui.SetupPrefixes()

	rt := &appState{prompter: prompts.NewTerminal()}
	rootCmd := NewRootCmd(rt)

	err := rootCmd.Execute()
	rt.close()

	if err != nil {
		if errhandler.IsCancelled(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}
		pterm.Error.Println(errhandler.Message(err))
		os.Exit(1)
	}
}

func NewRootCmd(rt *appState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "campuspay is a small CLI wallet for sending and requesting money",
		Long: `campuspay is a small CLI wallet for sending and requesting money.

Run it without arguments for the interactive menu, or use the subcommands
for one-shot operations.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(rt.svc(), rt.prompter).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&rt.dataDir, "data-dir", "", "directory holding users.json and transactions.txt")

	rootCmd.AddCommand(NewRegisterCmd(rt))
	rootCmd.AddCommand(NewBalanceCmd(rt))
	rootCmd.AddCommand(NewSendCmd(rt))
	rootCmd.AddCommand(NewRequestCmd(rt))
	rootCmd.AddCommand(NewHistoryCmd(rt))
	rootCmd.AddCommand(NewUsersCmd(rt))
	rootCmd.AddCommand(NewInfoCmd(rt))

	return rootCmd
}

func (r *appState) init() error {
	if r.app != nil {
		return nil
	}

	cfg, err := initConfig(r.cfgFile)
	if err != nil {
		return err
	}
	if r.dataDir != "" {
		cfg.Storage.Dir = r.dataDir
	}
	r.cfg = cfg

	closeLog, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	r.cleanups = append(r.cleanups, closeLog)

	application, cleanup, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	r.cleanups = append(r.cleanups, cleanup)
	r.app = application

	return nil
}

func setDefaults(v *viper.Viper) {
	d := config.NewDefault()

	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.dir", d.Storage.Dir)
	v.SetDefault("storage.users_file", d.Storage.UsersFile)
	v.SetDefault("storage.transactions_file", d.Storage.TransactionsFile)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("ledger.signup_bonus", d.Ledger.SignupBonus)
	v.SetDefault("ledger.currency_symbol", d.Ledger.CurrencySymbol)
	v.SetDefault("auth.hash_passwords", d.Auth.HashPasswords)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

func initConfig(cfgFile string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix("CAMPUSPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// createDefaultConfig writes config.yaml with the defaults on first run.
// A read-only config directory is not fatal; defaults are used instead.
func createDefaultConfig(v *viper.Viper, appDir string) error {
	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		logger.Log.WithError(err).Warn("config directory not writable, using defaults")
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
