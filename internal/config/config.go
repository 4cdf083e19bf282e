package config

import (
	"path/filepath"

	"github.com/hance08/campuspay/internal/constants"
)

type Config struct {
	Storage    StorageConfig `mapstructure:"storage"`
	Ledger     LedgerConfig  `mapstructure:"ledger"`
	Auth       AuthConfig    `mapstructure:"auth"`
	Log        LogConfig     `mapstructure:"log"`
	ConfigPath string        `mapstructure:"-"`
}

type StorageConfig struct {
	Driver           string `mapstructure:"driver"`
	Dir              string `mapstructure:"dir"`
	UsersFile        string `mapstructure:"users_file"`
	TransactionsFile string `mapstructure:"transactions_file"`
	DBPath           string `mapstructure:"db_path"`
}

type LedgerConfig struct {
	SignupBonus    string `mapstructure:"signup_bonus"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type AuthConfig struct {
	HashPasswords bool `mapstructure:"hash_passwords"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:           constants.DriverJSON,
			Dir:              ".",
			UsersFile:        constants.DefaultUsersFile,
			TransactionsFile: constants.DefaultTxFile,
			DBPath:           constants.DefaultDBFile,
		},
		Ledger: LedgerConfig{
			SignupBonus:    constants.SignupBonus,
			CurrencySymbol: constants.CurrencySymbol,
		},
		Auth: AuthConfig{HashPasswords: false},
		Log:  LogConfig{Level: "warn", File: ""},
	}
}

// UsersPath returns the account snapshot location, resolved against Storage.Dir
// unless it is already absolute.
func (c *Config) UsersPath() string {
	return c.resolve(c.Storage.UsersFile)
}

func (c *Config) TransactionsPath() string {
	return c.resolve(c.Storage.TransactionsFile)
}

func (c *Config) DBPath() string {
	return c.resolve(c.Storage.DBPath)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.Storage.Dir == "" {
		return name
	}
	return filepath.Join(c.Storage.Dir, name)
}
