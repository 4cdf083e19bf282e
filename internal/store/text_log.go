package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/model"
	"github.com/shopspring/decimal"
)

// TextTransactionLog is the append-only transactions.txt file.
type TextTransactionLog struct {
	path string
}

func NewTextTransactionLog(path string) *TextTransactionLog {
	return &TextTransactionLog{path: path}
}

func (l *TextTransactionLog) AppendTransaction(rec model.TransactionRecord) error {
	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, constants.DataDirPermission); err != nil {
			return fmt.Errorf("can not create data directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.DataFilePermission)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(FormatRecord(rec)); err != nil {
		return fmt.Errorf("failed to append to %s: %w", l.path, err)
	}

	return nil
}

// RawTransactions returns the log text unchanged.
func (l *TextTransactionLog) RawTransactions() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	return string(data), nil
}

// ListTransactions parses every line in insertion order.
func (l *TextTransactionLog) ListTransactions() ([]*model.TransactionRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var records []*model.TransactionRecord
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}

	return records, nil
}

// FormatRecord renders one log line including the trailing newline:
//
//	2025-01-02 15:04:05 | SEND | From: alice | To: bob | Amount: $30.00
func FormatRecord(rec model.TransactionRecord) string {
	return fmt.Sprintf("%s | %s | From: %s | To: %s | Amount: $%s\n",
		rec.Timestamp.Format(constants.TimestampFormat),
		rec.Action,
		rec.Sender,
		rec.Receiver,
		rec.Amount.StringFixed(constants.AmountPlaces),
	)
}

// ParseRecord is the inverse of FormatRecord. The trailing newline is optional.
func ParseRecord(line string) (*model.TransactionRecord, error) {
	line = strings.TrimRight(line, "\r\n")

	parts := strings.Split(line, constants.LogFieldSep)
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: expected 5 fields, got %d", ErrMalformedRecord, len(parts))
	}

	ts, err := time.ParseInLocation(constants.TimestampFormat, parts[0], time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp '%s'", ErrMalformedRecord, parts[0])
	}

	action := model.Action(parts[1])
	if !action.Valid() {
		return nil, fmt.Errorf("%w: unknown action '%s'", ErrMalformedRecord, parts[1])
	}

	sender, ok := strings.CutPrefix(parts[2], constants.LogFromPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing sender", ErrMalformedRecord)
	}

	receiver, ok := strings.CutPrefix(parts[3], constants.LogToPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing receiver", ErrMalformedRecord)
	}

	amountStr, ok := strings.CutPrefix(parts[4], constants.LogAmountPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing amount", ErrMalformedRecord)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount '%s'", ErrMalformedRecord, amountStr)
	}

	return &model.TransactionRecord{
		Timestamp: ts,
		Action:    action,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
	}, nil
}
