package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/campuspay/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAccountStore_MissingFileIsEmpty(t *testing.T) {
	s := NewJSONAccountStore(filepath.Join(t.TempDir(), "users.json"))

	accounts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestJSONAccountStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.json")
	s := NewJSONAccountStore(path)

	in := map[string]*model.Account{
		"alice": {Username: "alice", Password: "pw1", Balance: decimal.RequireFromString("70.00")},
		"bob":   {Username: "bob", Password: "pw2", Balance: decimal.RequireFromString("130.10")},
		"carol": {Username: "carol", Password: "", Balance: decimal.RequireFromString("0.005")},
	}
	require.NoError(t, s.SaveAccounts(in))

	out, err := s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for name, want := range in {
		got, ok := out[name]
		require.True(t, ok, name)
		assert.Equal(t, want.Username, got.Username)
		assert.Equal(t, want.Password, got.Password)
		assert.True(t, want.Balance.Equal(got.Balance), "%s: want %s got %s", name, want.Balance, got.Balance)
	}
}

func TestJSONAccountStore_FileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewJSONAccountStore(path)

	require.NoError(t, s.SaveAccounts(map[string]*model.Account{
		"alice": {Username: "alice", Password: "secret", Balance: decimal.NewFromInt(100)},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "{\n  \"alice\": {\n    \"password\": \"secret\",\n    \"balance\": 100.00\n  }\n}"
	assert.Equal(t, want, string(data))
}

func TestJSONAccountStore_ReadsLegacyFloats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	legacy := `{
  "alice": {"password": "a", "balance": 70.0},
  "bob": {"password": "b", "balance": 130}
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	accounts, err := NewJSONAccountStore(path).LoadAccounts()
	require.NoError(t, err)

	assert.Equal(t, "70.00", accounts["alice"].Balance.StringFixed(2))
	assert.Equal(t, "130.00", accounts["bob"].Balance.StringFixed(2))
}

func TestJSONAccountStore_RejectsMalformedEntries(t *testing.T) {
	cases := map[string]string{
		"not an object":    `[1, 2]`,
		"entry not object": `{"alice": 5}`,
		"missing password": `{"alice": {"balance": 1}}`,
		"numeric password": `{"alice": {"password": 12, "balance": 1}}`,
		"missing balance":  `{"alice": {"password": "x"}}`,
		"string balance":   `{"alice": {"password": "x", "balance": "100"}}`,
		"empty username":   `{"": {"password": "x", "balance": 1}}`,
		"broken json":      `{"alice": `,
		"trailing object":  `{"alice": {"password": "x", "balance": 1}} {"garbage": true`,
		"trailing brace":   `{"alice": {"password": "x", "balance": 1}}}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := NewJSONAccountStore(path).LoadAccounts()
			assert.ErrorIs(t, err, ErrMalformedSnapshot)
		})
	}
}

func TestJSONAccountStore_TrailingWhitespaceIsFine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"alice\": {\"password\": \"a\", \"balance\": 1}}\n\n"), 0644))

	accounts, err := NewJSONAccountStore(path).LoadAccounts()
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
