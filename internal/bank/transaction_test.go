package bank

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_FieldsFixedAtConstruction(t *testing.T) {
	before := time.Now()
	tx := newTransaction(dec("25.00"), "rent")
	after := time.Now()

	assert.True(t, tx.Amount().Equal(dec("25.00")))
	assert.Equal(t, "rent", tx.Memo())
	assert.False(t, tx.Timestamp().Before(before))
	assert.False(t, tx.Timestamp().After(after))
}

func TestTransaction_SummaryLine(t *testing.T) {
	tx := newTransaction(dec("100"), "payday")
	line := tx.SummaryLine()

	assert.True(t, strings.HasSuffix(line, " : $100.00 : payday"), "got %q", line)
	assert.True(t, strings.HasPrefix(line, tx.Timestamp().Format(summaryTimeLayout)), "got %q", line)
}

func TestTransaction_SummaryLine_NegativeAmount(t *testing.T) {
	tx := newTransaction(dec("-42.5"), "")
	parts := strings.Split(tx.SummaryLine(), " : ")
	assert.Len(t, parts, 3)
	assert.Equal(t, "$(42.50)", parts[1], "negative amounts render in parentheses, no minus sign")
}

func TestTransaction_TimestampsNonDecreasing(t *testing.T) {
	a := newAccount("Savings", "0000000001", "100001")
	a.AddTransaction(dec("1.00"), "")
	a.AddTransaction(dec("2.00"), "")

	first := a.transactions[0].Timestamp()
	second := a.transactions[1].Timestamp()
	assert.False(t, second.Before(first))
}
