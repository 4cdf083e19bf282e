package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/campuspay/internal/ledger"
	"github.com/hance08/campuspay/internal/logger"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	code := m.Run()
	logger.Discard()
	os.Exit(code)
}

var errNoAnswer = errors.New("no scripted answer")

// queuePrompter answers every prompt from one queue.
type queuePrompter struct {
	answers []string
}

func (p *queuePrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", errNoAnswer
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *queuePrompter) Select(string, []string) (string, error) { return p.next() }
func (p *queuePrompter) Password(string) (string, error)         { return p.next() }
func (p *queuePrompter) Amount(string) (string, error)           { return p.next() }

func (p *queuePrompter) Input(_ string, validator func(string) error) (string, error) {
	a, err := p.next()
	if err != nil {
		return "", err
	}
	if validator != nil {
		if err := validator(a); err != nil {
			return "", err
		}
	}
	return a, nil
}

// writeConfig creates a config file that keeps all data inside dir. extra is
// added to the storage section.
func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yaml")
	content := "storage:\n  dir: " + dir + "\n" + extra +
		"log:\n  level: debug\n  file: " + filepath.Join(dir, "campuspay.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes one command line against the data in dir, answering prompts
// from answers.
func run(t *testing.T, dir string, answers []string, args ...string) error {
	t.Helper()

	state := &appState{prompter: &queuePrompter{answers: answers}}
	defer state.close()

	root := NewRootCmd(state)
	root.SetArgs(append([]string{"--config", writeConfig(t, dir, "")}, args...))
	return root.Execute()
}

func readLog(t *testing.T, dir string) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, "transactions.txt"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestCommands_Scenario(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, dir, []string{"a-pw"}, "register", "-u", "alice"))
	require.NoError(t, run(t, dir, []string{"bob", "b-pw"}, "register"))

	require.NoError(t, run(t, dir, []string{"a-pw"}, "send", "-u", "alice", "--to", "bob", "--amount", "30"))

	err := run(t, dir, []string{"a-pw"}, "send", "-u", "alice", "--to", "bob", "--amount", "1000")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	require.NoError(t, run(t, dir, []string{"b-pw", "alice", "20"}, "request", "-u", "bob"))
	require.NoError(t, run(t, dir, []string{"a-pw"}, "balance", "-u", "alice"))

	lines := readLog(t, dir)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " | SEND | From: alice | To: bob | Amount: $30.00"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " | REQUEST | From: alice | To: bob | Amount: $20.00"), lines[1])

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"balance": 70.00`)
	assert.Contains(t, string(data), `"balance": 130.00`)

	assert.NoError(t, run(t, dir, nil, "history"))
	assert.NoError(t, run(t, dir, nil, "history", "--raw"))
	assert.NoError(t, run(t, dir, nil, "history", "-u", "bob", "-l", "1"))
	assert.NoError(t, run(t, dir, nil, "users"))
	assert.NoError(t, run(t, dir, nil, "info"))
}

func TestCommands_Failures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, []string{"pw"}, "register", "-u", "alice"))

	err := run(t, dir, []string{"other"}, "register", "-u", "alice")
	assert.ErrorIs(t, err, ledger.ErrDuplicateUsername)

	err = run(t, dir, []string{"wrong"}, "balance", "-u", "alice")
	assert.ErrorIs(t, err, ledger.ErrInvalidCredentials)

	err = run(t, dir, []string{"pw"}, "send", "-u", "alice", "--to", "ghost", "--amount", "5")
	assert.ErrorIs(t, err, ledger.ErrRecipientNotFound)

	err = run(t, dir, []string{"pw"}, "send", "-u", "alice", "--to", "alice", "--amount", "abc")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	err = run(t, dir, []string{"pw"}, "request", "-u", "alice", "--from", "ghost", "--amount", "5")
	assert.ErrorIs(t, err, ledger.ErrTargetNotFound)

	err = run(t, dir, []string{""}, "register", "-u", "bob")
	assert.EqualError(t, err, "password can't be empty")

	err = run(t, dir, nil, "history", "--limit", "-1")
	assert.Error(t, err)

	_, err = os.Stat(filepath.Join(dir, "transactions.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCommands_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0644))

	err := run(t, dir, nil, "users")

	var loadErr *ledger.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCommands_DataDirFlag(t *testing.T) {
	cfgDir := t.TempDir()
	dataDir := t.TempDir()

	state := &appState{prompter: &queuePrompter{answers: []string{"pw"}}}
	defer state.close()

	root := NewRootCmd(state)
	root.SetArgs([]string{"--config", writeConfig(t, cfgDir, ""), "--data-dir", dataDir, "register", "-u", "alice"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dataDir, "users.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfgDir, "users.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCommands_SQLiteDriver(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "  driver: sqlite\n")

	exec := func(answers []string, args ...string) error {
		state := &appState{prompter: &queuePrompter{answers: answers}}
		defer state.close()

		root := NewRootCmd(state)
		root.SetArgs(append([]string{"--config", cfgPath}, args...))
		return root.Execute()
	}

	require.NoError(t, exec([]string{"a"}, "register", "-u", "alice"))
	require.NoError(t, exec([]string{"b"}, "register", "-u", "bob"))
	require.NoError(t, exec([]string{"a"}, "send", "-u", "alice", "--to", "bob", "--amount", "12.50"))
	require.NoError(t, exec(nil, "history"))

	_, err := os.Stat(filepath.Join(dir, "campuspay.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "users.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAMPUSPAY_LEDGER_SIGNUP_BONUS", "25.00")

	cfg, err := initConfig(writeConfig(t, dir, ""))
	require.NoError(t, err)

	assert.Equal(t, "25.00", cfg.Ledger.SignupBonus)
	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, "users.json", cfg.Storage.UsersFile)
	assert.NotEmpty(t, cfg.ConfigPath)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	_, err := initConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
