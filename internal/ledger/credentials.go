package ledger

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialPolicy decides how passwords are stored in the snapshot and
// how a login attempt is checked against the stored value.
type CredentialPolicy interface {
	Encode(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainCredentials stores passwords verbatim and compares them exactly.
// This is the users.json format written by every earlier version.
type PlainCredentials struct{}

func (PlainCredentials) Encode(password string) (string, error) {
	return password, nil
}

func (PlainCredentials) Verify(stored, password string) bool {
	return stored == password
}

// BcryptCredentials hashes new passwords. Stored values that are not bcrypt
// hashes are compared as plaintext so existing snapshots keep working.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Encode(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptCredentials) Verify(stored, password string) bool {
	if !isBcryptHash(stored) {
		return stored == password
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil && strings.HasPrefix(s, "$2")
}
