package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is an append-only ledger of transactions. Balance is always
// derived by summation; no field caches it.
type Account struct {
	name         string
	id           string
	holderID     string // non-owning back-reference to the holding user
	transactions []Transaction
}

func newAccount(name, id, holderID string) *Account {
	return &Account{name: name, id: id, holderID: holderID}
}

// ID returns the account's fixed-length numeric identifier.
func (a *Account) ID() string {
	return a.id
}

// Name returns the account's display label, e.g. "Savings".
func (a *Account) Name() string {
	return a.name
}

// HolderID returns the ID of the user holding this account.
func (a *Account) HolderID() string {
	return a.holderID
}

// AddTransaction appends a ledger entry with the given amount and memo,
// timestamped now. It performs no amount validation; Deposit and
// Withdraw are the validated entry points.
func (a *Account) AddTransaction(amount decimal.Decimal, memo string) {
	a.transactions = append(a.transactions, newTransaction(amount, memo))
}

// Deposit appends a positive ledger entry.
func (a *Account) Deposit(amount decimal.Decimal, memo string) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	a.AddTransaction(amount, memo)
	return nil
}

// Withdraw appends a negative ledger entry. The amount must be positive
// and must not exceed the current balance.
func (a *Account) Withdraw(amount decimal.Decimal, memo string) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(a.Balance()) {
		return ErrInsufficientFunds
	}
	a.AddTransaction(amount.Neg(), memo)
	return nil
}

// Balance sums every transaction amount in the ledger, computed fresh
// on each call.
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.transactions {
		total = total.Add(t.amount)
	}
	return total
}

// NumTransactions returns the number of ledger entries.
func (a *Account) NumTransactions() int {
	return len(a.transactions)
}

// TransactionHistory returns the ledger in reverse chronological order
// (most recent first). The underlying storage order stays chronological;
// the reversal is a read-time copy.
func (a *Account) TransactionHistory() []Transaction {
	out := make([]Transaction, len(a.transactions))
	for i, t := range a.transactions {
		out[len(a.transactions)-1-i] = t
	}
	return out
}

// SummaryLine renders the account as "<id> : $<balance> : <name>",
// with negative balances parenthesized.
func (a *Account) SummaryLine() string {
	return fmt.Sprintf("%s : $%s : %s", a.id, formatAmount(a.Balance()), a.name)
}
