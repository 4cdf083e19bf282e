package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/model"
	"github.com/hance08/campuspay/internal/store"
	"github.com/shopspring/decimal"
)

// Ledger holds every account for the lifetime of one process and writes
// the full mapping back to the repository after each mutation.
//
// It is not safe for concurrent use; the CLI runs a single session.
type Ledger struct {
	accounts    map[string]*model.Account
	repo        store.AccountRepository
	credentials CredentialPolicy
	signupBonus decimal.Decimal
	now         func() time.Time
}

type Option func(*Ledger)

func WithCredentials(p CredentialPolicy) Option {
	return func(l *Ledger) {
		l.credentials = p
	}
}

func WithSignupBonus(bonus decimal.Decimal) Option {
	return func(l *Ledger) {
		l.signupBonus = bonus
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Load reads the snapshot from repo. Any failure, including a malformed
// entry, is returned as *LoadError.
func Load(repo store.AccountRepository, opts ...Option) (*Ledger, error) {
	accounts, err := repo.LoadAccounts()
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	for name, acc := range accounts {
		if acc == nil {
			return nil, &LoadError{Err: fmt.Errorf("%w: entry '%s' is empty", store.ErrMalformedSnapshot, name)}
		}
		acc.Username = name
	}

	l := &Ledger{
		accounts:    accounts,
		repo:        repo,
		credentials: PlainCredentials{},
		signupBonus: decimal.RequireFromString(constants.SignupBonus),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Register creates an account funded with the sign-up bonus.
func (l *Ledger) Register(username, password string) (*model.Account, error) {
	if _, exists := l.accounts[username]; exists {
		return nil, ErrDuplicateUsername
	}

	stored, err := l.credentials.Encode(password)
	if err != nil {
		return nil, err
	}

	acc := &model.Account{
		Username: username,
		Password: stored,
		Balance:  l.signupBonus,
	}
	l.accounts[username] = acc

	if err := l.save(); err != nil {
		delete(l.accounts, username)
		return nil, err
	}

	return acc.Clone(), nil
}

func (l *Ledger) Authenticate(username, password string) (*model.Account, error) {
	acc, ok := l.accounts[username]
	if !ok || !l.credentials.Verify(acc.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return acc.Clone(), nil
}

// Transfer moves amount from sender to recipient. Checks run in a fixed
// order and none of them touch state when they fail. The returned SEND
// record is for the caller to append to the transaction log.
func (l *Ledger) Transfer(sender, recipient string, amount decimal.Decimal) (model.TransactionRecord, error) {
	to, ok := l.accounts[recipient]
	if !ok {
		return model.TransactionRecord{}, ErrRecipientNotFound
	}

	if !amount.IsPositive() {
		return model.TransactionRecord{}, ErrInvalidAmount
	}

	from, ok := l.accounts[sender]
	if !ok {
		return model.TransactionRecord{}, ErrAccountNotFound
	}

	if from.Balance.LessThan(amount) {
		return model.TransactionRecord{}, ErrInsufficientFunds
	}

	prevFrom, prevTo := from.Balance, to.Balance
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	if err := l.save(); err != nil {
		from.Balance, to.Balance = prevFrom, prevTo
		return model.TransactionRecord{}, err
	}

	return model.TransactionRecord{
		Timestamp: l.now(),
		Action:    model.ActionSend,
		Sender:    sender,
		Receiver:  recipient,
		Amount:    amount,
	}, nil
}

// RecordRequest validates a money request from requester to target. It never
// changes a balance and nothing ever settles it.
func (l *Ledger) RecordRequest(target, requester string, amount decimal.Decimal) (model.TransactionRecord, error) {
	if _, ok := l.accounts[target]; !ok {
		return model.TransactionRecord{}, ErrTargetNotFound
	}

	if !amount.IsPositive() {
		return model.TransactionRecord{}, ErrInvalidAmount
	}

	return model.TransactionRecord{
		Timestamp: l.now(),
		Action:    model.ActionRequest,
		Sender:    target,
		Receiver:  requester,
		Amount:    amount,
	}, nil
}

func (l *Ledger) Exists(username string) bool {
	_, ok := l.accounts[username]
	return ok
}

func (l *Ledger) Balance(username string) (decimal.Decimal, error) {
	acc, ok := l.accounts[username]
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}
	return acc.Balance, nil
}

func (l *Ledger) Account(username string) (*model.Account, error) {
	acc, ok := l.accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc.Clone(), nil
}

// Accounts returns copies of all accounts ordered by username.
func (l *Ledger) Accounts() []*model.Account {
	out := make([]*model.Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		out = append(out, acc.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username < out[j].Username
	})
	return out
}

func (l *Ledger) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, acc := range l.accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

func (l *Ledger) Len() int {
	return len(l.accounts)
}

func (l *Ledger) save() error {
	if err := l.repo.SaveAccounts(l.accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}
