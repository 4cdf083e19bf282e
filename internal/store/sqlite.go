package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/model"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// SQLiteStore keeps accounts and the transaction log in one SQLite database.
type SQLiteStore struct {
	db DBTX
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, constants.DataDirPermission); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) ExecTx(fn func(*SQLiteStore) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &SQLiteStore{db: tx}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) LoadAccounts() (map[string]*model.Account, error) {
	rows, err := s.db.Query(`
		SELECT username, password, balance
		FROM accounts
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	accounts := make(map[string]*model.Account)
	for rows.Next() {
		var username, password, balanceStr string
		if err := rows.Scan(&username, &password, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		balance, err := decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("%w: entry '%s' balance '%s'", ErrMalformedSnapshot, username, balanceStr)
		}

		accounts[username] = &model.Account{
			Username: username,
			Password: password,
			Balance:  balance,
		}
	}

	return accounts, rows.Err()
}

// SaveAccounts upserts every account inside a single SQL transaction.
func (s *SQLiteStore) SaveAccounts(accounts map[string]*model.Account) error {
	return s.ExecTx(func(tx *SQLiteStore) error {
		stmt, err := tx.db.Prepare(`
			INSERT INTO accounts (username, password, balance)
			VALUES (?, ?, ?)
			ON CONFLICT(username) DO UPDATE SET
				password = excluded.password,
				balance  = excluded.balance;
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare SQL : %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for username, acc := range accounts {
			if _, err := stmt.Exec(username, acc.Password, formatBalance(acc.Balance)); err != nil {
				return fmt.Errorf("failed to save account '%s': %w", username, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) AppendTransaction(rec model.TransactionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO transactions (timestamp, action, sender, receiver, amount)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Timestamp.Unix(), string(rec.Action), rec.Sender, rec.Receiver, rec.Amount.StringFixed(constants.AmountPlaces))
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTransactions() ([]*model.TransactionRecord, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, action, sender, receiver, amount
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*model.TransactionRecord
	for rows.Next() {
		var (
			ts        int64
			action    string
			amountStr string
			rec       model.TransactionRecord
		)
		if err := rows.Scan(&ts, &action, &rec.Sender, &rec.Receiver, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad amount '%s'", ErrMalformedRecord, amountStr)
		}

		rec.Timestamp = time.Unix(ts, 0)
		rec.Action = model.Action(action)
		rec.Amount = amount
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// RawTransactions renders the table in the same line format as the text log.
func (s *SQLiteStore) RawTransactions() (string, error) {
	records, err := s.ListTransactions()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(FormatRecord(*rec))
	}
	return sb.String(), nil
}
