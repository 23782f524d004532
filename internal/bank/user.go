package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// User is a bank customer: identity, a hashed PIN credential, and the
// ordered list of accounts the user holds. The PIN hash is set once at
// construction and never mutated; the raw PIN is never retained.
//
// Accounts are addressed by zero-based position. That positional order
// is the display order the interactive menu shows (1-based there).
type User struct {
	firstName string
	lastName  string
	id        string
	pinHash   []byte
	accounts  []*Account
}

func newUser(firstName, lastName, pin, id string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing pin: %w", err)
	}
	return &User{
		firstName: firstName,
		lastName:  lastName,
		id:        id,
		pinHash:   hash,
	}, nil
}

// ID returns the user's fixed-length numeric identifier.
func (u *User) ID() string {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// ValidatePin reports whether candidate matches the PIN supplied at
// construction. The comparison is constant-time via bcrypt.
func (u *User) ValidatePin(candidate string) bool {
	return bcrypt.CompareHashAndPassword(u.pinHash, []byte(candidate)) == nil
}

// addAccount appends an account to the user's list. Global ID
// uniqueness is already guaranteed by the bank registry.
func (u *User) addAccount(a *Account) {
	u.accounts = append(u.accounts, a)
}

// NumAccounts returns how many accounts the user holds.
func (u *User) NumAccounts() int {
	return len(u.accounts)
}

// Account returns the account at the given zero-based position.
func (u *User) Account(i int) (*Account, error) {
	if i < 0 || i >= len(u.accounts) {
		return nil, ErrIndexOutOfRange
	}
	return u.accounts[i], nil
}

// AccountID returns the ID of the account at the given position.
func (u *User) AccountID(i int) (string, error) {
	a, err := u.Account(i)
	if err != nil {
		return "", err
	}
	return a.ID(), nil
}

// AccountBalance returns the derived balance of the account at the
// given position.
func (u *User) AccountBalance(i int) (decimal.Decimal, error) {
	a, err := u.Account(i)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance(), nil
}

// AddAccountTransaction appends a raw ledger entry to the account at
// the given position, bypassing amount validation. Deposit and
// Withdraw are the validated paths.
func (u *User) AddAccountTransaction(i int, amount decimal.Decimal, memo string) error {
	a, err := u.Account(i)
	if err != nil {
		return err
	}
	a.AddTransaction(amount, memo)
	return nil
}

// Deposit posts a deposit to the account at the given position.
func (u *User) Deposit(i int, amount decimal.Decimal, memo string) error {
	a, err := u.Account(i)
	if err != nil {
		return err
	}
	return a.Deposit(amount, memo)
}

// Withdraw posts a withdrawal from the account at the given position.
func (u *User) Withdraw(i int, amount decimal.Decimal, memo string) error {
	a, err := u.Account(i)
	if err != nil {
		return err
	}
	return a.Withdraw(amount, memo)
}

// Transfer moves amount between two of the user's accounts as a linked
// pair of transactions: a negative entry on the source tagged with the
// destination account's ID and a positive entry on the destination
// tagged with the source account's ID. All checks run before any
// posting, so a rejected transfer records nothing. An optional memo is
// appended to both generated tags.
func (u *User) Transfer(from, to int, amount decimal.Decimal, memo string) error {
	src, err := u.Account(from)
	if err != nil {
		return err
	}
	dst, err := u.Account(to)
	if err != nil {
		return err
	}
	if src.ID() == dst.ID() {
		return ErrSameAccount
	}
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(src.Balance()) {
		return ErrInsufficientFunds
	}

	outMemo := "transfer to account " + dst.ID()
	inMemo := "transfer from account " + src.ID()
	if memo != "" {
		outMemo += ": " + memo
		inMemo += ": " + memo
	}

	src.AddTransaction(amount.Neg(), outMemo)
	dst.AddTransaction(amount, inMemo)
	return nil
}

// AccountSummaryLines renders one summary line per account in display
// order.
func (u *User) AccountSummaryLines() []string {
	lines := make([]string, len(u.accounts))
	for i, a := range u.accounts {
		lines[i] = a.SummaryLine()
	}
	return lines
}
