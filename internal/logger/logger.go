package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/campuspay/internal/config"
	"github.com/sirupsen/logrus"
)

// Log is the diagnostic logger. User facing output goes through pterm;
// this one records what the ledger did and why an operation failed.
var Log = logrus.New()

func init() {
	Log.SetOutput(io.Discard)
}

// Init configures Log from cfg and returns a cleanup func that closes the
// log file, if one was opened.
func Init(cfg config.LogConfig) (func(), error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.WarnLevel
	}

	Log.SetLevel(level)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.File == "" {
		Log.SetOutput(os.Stderr)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("can not create log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	Log.SetOutput(f)
	return func() {
		_ = f.Close()
	}, nil
}

// Discard silences Log. Useful for tests.
func Discard() {
	Log.SetOutput(io.Discard)
}
