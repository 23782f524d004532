// Package bank implements the bookkeeping core: a Bank registers users
// and accounts and issues their identifiers, a User holds accounts
// addressed by position, an Account is an append-only ledger of
// immutable Transactions, and every balance is derived by summation.
//
// The package is written for a single synchronous caller (one
// interactive session). It carries no locking: exposing it to
// concurrent callers would require a mutex around the bank registry
// and around each account's post/balance pair.
package bank

import (
	"fmt"

	"github.com/teller-dev/teller/internal/id"
)

// Identifier widths, in digits.
const (
	UserIDLength    = 6
	AccountIDLength = 10
)

// Bank is the registry of users and accounts, and the sole authority
// for creating and uniquely identifying them. Users are kept in
// registration order; ID registries are maps for O(1) collision checks.
type Bank struct {
	name      string
	users     []*User
	usersByID map[string]*User
	accounts  map[string]*Account
}

// New creates an empty bank.
func New(name string) *Bank {
	return &Bank{
		name:      name,
		usersByID: make(map[string]*User),
		accounts:  make(map[string]*Account),
	}
}

// Name returns the bank's display name.
func (b *Bank) Name() string {
	return b.name
}

// NumUsers returns the number of registered users.
func (b *Bank) NumUsers() int {
	return len(b.users)
}

// Users returns the registered users in registration order. The slice
// is a copy; the users themselves are shared handles.
func (b *Bank) Users() []*User {
	out := make([]*User, len(b.users))
	copy(out, b.users)
	return out
}

// NumAccounts returns the number of registered accounts.
func (b *Bank) NumAccounts() int {
	return len(b.accounts)
}

// NewUserID issues a fresh 6-digit user ID, regenerating on collision
// with any registered user.
func (b *Bank) NewUserID() (string, error) {
	for {
		candidate, err := id.Numeric(UserIDLength)
		if err != nil {
			return "", fmt.Errorf("generating user ID: %w", err)
		}
		if _, taken := b.usersByID[candidate]; !taken {
			return candidate, nil
		}
	}
}

// NewAccountID issues a fresh 10-digit account ID, regenerating on
// collision with any registered account.
func (b *Bank) NewAccountID() (string, error) {
	for {
		candidate, err := id.Numeric(AccountIDLength)
		if err != nil {
			return "", fmt.Errorf("generating account ID: %w", err)
		}
		if _, taken := b.accounts[candidate]; !taken {
			return candidate, nil
		}
	}
}

// AddUser creates and registers a user with a hashed PIN and a fresh
// ID, then auto-opens a default "Savings" account for them.
func (b *Bank) AddUser(firstName, lastName, pin string) (*User, error) {
	uid, err := b.NewUserID()
	if err != nil {
		return nil, err
	}

	u, err := newUser(firstName, lastName, pin, uid)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	b.users = append(b.users, u)
	b.usersByID[uid] = u

	if _, err := b.OpenAccount(u, "Savings"); err != nil {
		return nil, err
	}
	return u, nil
}

// OpenAccount creates an account with the given display name for an
// existing user, registers it, and appends it to the user's list.
func (b *Bank) OpenAccount(u *User, name string) (*Account, error) {
	aid, err := b.NewAccountID()
	if err != nil {
		return nil, err
	}
	a := newAccount(name, aid, u.ID())
	b.addAccount(a)
	u.addAccount(a)
	return a, nil
}

// addAccount registers an account in the bank's registry. Registration
// only; ownership stays with the holding user.
func (b *Bank) addAccount(a *Account) {
	b.accounts[a.ID()] = a
}

// Login returns the user matching the given ID and PIN. Any failure,
// unknown ID or wrong PIN alike, yields ErrAuthFailed.
func (b *Bank) Login(userID, pin string) (*User, error) {
	u, ok := b.usersByID[userID]
	if !ok || !u.ValidatePin(pin) {
		return nil, ErrAuthFailed
	}
	return u, nil
}
