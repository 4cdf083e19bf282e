package service

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hance08/campuspay/internal/config"
	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/logger"
	"github.com/hance08/campuspay/internal/model"
	"github.com/hance08/campuspay/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

type testEnv struct {
	svc    *Service
	ledger *ledger.Ledger
	files  *store.FileStore
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.NewDefault()
	cfg.Storage.Dir = t.TempDir()
	files := store.NewFileStore(cfg.UsersPath(), cfg.TransactionsPath())

	at := time.Date(2025, 9, 1, 12, 30, 0, 0, time.Local)
	l, err := ledger.Load(files, ledger.WithClock(func() time.Time { return at }))
	require.NoError(t, err)

	return &testEnv{
		svc:    NewService(l, files, cfg, logrus.NewEntry(logger.Log)),
		ledger: l,
		files:  files,
		cfg:    cfg,
	}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestScenario_AliceAndBob(t *testing.T) {
	env := newTestEnv(t)
	acct, tx := env.svc.Account, env.svc.Transaction

	_, err := acct.Register("alice", "a-pw")
	require.NoError(t, err)
	_, err = acct.Register("bob", "b-pw")
	require.NoError(t, err)

	_, err = tx.Send("alice", "bob", amount("30.00"))
	require.NoError(t, err)

	_, err = tx.Send("alice", "bob", amount("1000.00"))
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	_, err = tx.Request("alice", "bob", amount("20.00"))
	require.NoError(t, err)

	aliceBal, err := acct.GetBalanceFormatted("alice")
	require.NoError(t, err)
	bobBal, err := acct.GetBalanceFormatted("bob")
	require.NoError(t, err)
	assert.Equal(t, "$70.00", aliceBal)
	assert.Equal(t, "$130.00", bobBal)

	raw, err := tx.RawHistory()
	require.NoError(t, err)
	assert.Equal(t,
		"2025-09-01 12:30:00 | SEND | From: alice | To: bob | Amount: $30.00\n"+
			"2025-09-01 12:30:00 | REQUEST | From: bob | To: alice | Amount: $20.00\n",
		raw)

	// state survives a restart
	reloaded, err := ledger.Load(env.files)
	require.NoError(t, err)
	bal, err := reloaded.Balance("alice")
	require.NoError(t, err)
	assert.True(t, bal.Equal(amount("70")))
}

func TestRegister_TrimsAndValidates(t *testing.T) {
	env := newTestEnv(t)

	acc, err := env.svc.Account.Register("  carol ", " pw ")
	require.NoError(t, err)
	assert.Equal(t, "carol", acc.Username)

	_, err = env.svc.Account.Login("carol", "pw")
	assert.NoError(t, err)

	_, err = env.svc.Account.Register("carol", "x")
	assert.ErrorIs(t, err, ledger.ErrDuplicateUsername)

	_, err = env.svc.Account.Register("bad name", "x")
	assert.Error(t, err)
	_, err = env.svc.Account.GetBalance("bad name")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	_, err = env.svc.Account.Register("dave", "")
	assert.Error(t, err)
}

func TestLogin_Invalid(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Account.Register("alice", "pw")
	require.NoError(t, err)

	_, err = env.svc.Account.Login("alice", "nope")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredentials)
	_, err = env.svc.Account.Login("zed", "pw")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredentials)
}

func TestSend_FailureWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Account.Register("alice", "pw")
	require.NoError(t, err)

	_, err = env.svc.Transaction.Send("alice", "ghost", amount("5"))
	assert.ErrorIs(t, err, ledger.ErrRecipientNotFound)

	_, err = env.svc.Transaction.Request("alice", "ghost", amount("5"))
	assert.ErrorIs(t, err, ledger.ErrTargetNotFound)

	_, err = os.Stat(env.cfg.TransactionsPath())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	records, err := env.svc.Transaction.History(HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// brokenLog accepts reads but fails every append.
type brokenLog struct{}

func (brokenLog) AppendTransaction(model.TransactionRecord) error {
	return errors.New("read-only file system")
}
func (brokenLog) ListTransactions() ([]*model.TransactionRecord, error) { return nil, nil }
func (brokenLog) RawTransactions() (string, error)                     { return "", nil }

func TestSend_LogFailureKeepsTransfer(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Storage.Dir = t.TempDir()
	accounts := store.NewJSONAccountStore(cfg.UsersPath())
	l, err := ledger.Load(accounts)
	require.NoError(t, err)
	svc := NewService(l, brokenLog{}, cfg, nil)

	_, err = svc.Account.Register("alice", "a")
	require.NoError(t, err)
	_, err = svc.Account.Register("bob", "b")
	require.NoError(t, err)

	rec, err := svc.Transaction.Send("alice", "bob", amount("10"))
	assert.ErrorIs(t, err, ErrLogAppend)
	require.NotNil(t, rec)

	bal, err := svc.Account.GetBalance("bob")
	require.NoError(t, err)
	assert.True(t, bal.Equal(amount("110")))
}

func TestHistory_FilterAndLimit(t *testing.T) {
	env := newTestEnv(t)
	for _, u := range []string{"alice", "bob", "carol"} {
		_, err := env.svc.Account.Register(u, "pw")
		require.NoError(t, err)
	}

	tx := env.svc.Transaction
	_, err := tx.Send("alice", "bob", amount("1"))
	require.NoError(t, err)
	_, err = tx.Send("bob", "carol", amount("2"))
	require.NoError(t, err)
	_, err = tx.Request("carol", "alice", amount("3"))
	require.NoError(t, err)

	all, err := tx.History(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	last, err := tx.History(HistoryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "bob", last[0].Sender)

	mine, err := tx.History(HistoryFilter{User: "alice"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, model.ActionSend, mine[0].Action)
	assert.Equal(t, model.ActionRequest, mine[1].Action)
}

func TestHistory_MalformedLog(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.cfg.TransactionsPath(), []byte("hello\n"), 0644))

	_, err := env.svc.Transaction.History(HistoryFilter{})
	assert.ErrorIs(t, err, store.ErrMalformedRecord)

	raw, err := env.svc.Transaction.RawHistory()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", raw)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("$30.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(amount("30.5")))

	for _, input := range []string{"", "abc", "1.001"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount, input)
	}
}

func TestFormatAmount_UsesConfiguredSymbol(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Ledger.CurrencySymbol = "€"

	assert.Equal(t, "€5.00", env.svc.Account.FormatAmount(amount("5")))
	assert.True(t, strings.HasPrefix(env.svc.Transaction.FormatAmount(amount("1")), "€"))
}
