package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/model"
	"github.com/shopspring/decimal"
)

// snapshotEntry is the on-disk shape of one user in users.json.
type snapshotEntry struct {
	Password string      `json:"password"`
	Balance  json.Number `json:"balance"`
}

// JSONAccountStore keeps the account mapping in a single JSON document
// keyed by username.
type JSONAccountStore struct {
	path string
}

func NewJSONAccountStore(path string) *JSONAccountStore {
	return &JSONAccountStore{path: path}
}

// LoadAccounts reads the snapshot. A missing or empty file is an empty ledger.
func (s *JSONAccountStore) LoadAccounts() (map[string]*model.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]*model.Account{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]*model.Account{}, nil
	}

	return decodeSnapshot(data)
}

func decodeSnapshot(data []byte) (map[string]*model.Account, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top level object", ErrMalformedSnapshot)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: top level value must be an object", ErrMalformedSnapshot)
	}

	accounts := make(map[string]*model.Account, len(raw))
	for username, value := range raw {
		acc, err := decodeEntry(username, value)
		if err != nil {
			return nil, err
		}
		accounts[username] = acc
	}

	return accounts, nil
}

func decodeEntry(username string, value any) (*model.Account, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrMalformedSnapshot)
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: entry '%s' is not an object", ErrMalformedSnapshot, username)
	}

	password, ok := fields["password"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: entry '%s' has no string password", ErrMalformedSnapshot, username)
	}

	number, ok := fields["balance"].(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: entry '%s' has no numeric balance", ErrMalformedSnapshot, username)
	}

	balance, err := decimal.NewFromString(number.String())
	if err != nil {
		return nil, fmt.Errorf("%w: entry '%s' balance %s: %v", ErrMalformedSnapshot, username, number, err)
	}

	return &model.Account{
		Username: username,
		Password: password,
		Balance:  balance,
	}, nil
}

// SaveAccounts rewrites the whole snapshot.
func (s *JSONAccountStore) SaveAccounts(accounts map[string]*model.Account) error {
	out := make(map[string]snapshotEntry, len(accounts))
	for username, acc := range accounts {
		out[username] = snapshotEntry{
			Password: acc.Password,
			Balance:  json.Number(formatBalance(acc.Balance)),
		}
	}

	data, err := json.MarshalIndent(out, "", constants.SnapshotIndent)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, constants.DataDirPermission); err != nil {
			return fmt.Errorf("can not create data directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, constants.DataFilePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// formatBalance writes at least two decimals and never drops precision.
func formatBalance(d decimal.Decimal) string {
	if d.Exponent() >= -constants.AmountPlaces {
		return d.StringFixed(constants.AmountPlaces)
	}
	return d.String()
}
