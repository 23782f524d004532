package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// summaryTimeLayout is the timestamp format used in transaction summary lines.
const summaryTimeLayout = "2006-01-02 15:04:05"

// Transaction is a single immutable ledger entry. All fields are fixed
// at construction; an entry is owned by exactly one account.
type Transaction struct {
	amount    decimal.Decimal
	memo      string
	timestamp time.Time
}

func newTransaction(amount decimal.Decimal, memo string) Transaction {
	return Transaction{
		amount:    amount,
		memo:      memo,
		timestamp: time.Now(),
	}
}

// Amount returns the signed transaction amount.
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Memo returns the transaction memo (may be empty).
func (t Transaction) Memo() string {
	return t.memo
}

// Timestamp returns the creation time of the transaction.
func (t Transaction) Timestamp() time.Time {
	return t.timestamp
}

// SummaryLine renders the transaction as "<timestamp> : $<amount> : <memo>".
// Negative amounts are parenthesized, e.g. -42.5 renders as (42.50).
func (t Transaction) SummaryLine() string {
	return fmt.Sprintf("%s : $%s : %s",
		t.timestamp.Format(summaryTimeLayout), formatAmount(t.amount), t.memo)
}

// formatAmount renders a currency amount with two decimal places,
// wrapping negative values in parentheses instead of a minus sign.
func formatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "(" + d.Neg().StringFixed(2) + ")"
	}
	return d.StringFixed(2)
}
