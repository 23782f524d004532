package session

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/bank"
)

// testBank returns a bank with one seeded user holding Savings and
// Checking accounts.
func testBank(t *testing.T) (*bank.Bank, *bank.User) {
	t.Helper()
	b := bank.New("Test Bank")
	u, err := b.AddUser("John", "Doe", "1234")
	require.NoError(t, err)
	_, err = b.OpenAccount(u, "Checking")
	require.NoError(t, err)
	return b, u
}

func runScript(t *testing.T, b *bank.Bank, trail *auditlog.Trail, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := New(b, trail, logger, in, &out)
	require.NoError(t, s.Run())
	return out.String()
}

func TestRun_EmptyInput(t *testing.T) {
	b, _ := testBank(t)
	in := strings.NewReader("")
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, New(b, auditlog.New(), logger, in, &out).Run())
	assert.Contains(t, out.String(), "Welcome to Test Bank")
}

func TestRun_LoginRetriesUntilSuccess(t *testing.T) {
	b, u := testBank(t)
	trail := auditlog.New()

	out := runScript(t, b, trail,
		"000000", "9999", // unknown ID
		u.ID(), "0000", // wrong PIN
		u.ID(), "1234", // success
		"7", // quit
	)

	assert.Equal(t, 2, strings.Count(out, "Incorrect user ID/pin combination."))
	assert.Contains(t, out, "Welcome, John Doe.")
}

func TestRun_FullFlow(t *testing.T) {
	b, u := testBank(t)
	trail := auditlog.New()

	out := runScript(t, b, trail,
		u.ID(), "1234",
		"4", "1", "100.00", "payday", // deposit 100 to Savings
		"3", "1", "150.00", "oops", // withdraw 150, rejected
		"5", "1", "2", "50.00", // transfer 50 Savings -> Checking
		"2", "1", // history for Savings
		"7", // quit
	)

	assert.Contains(t, out, "Deposited $100.00.")
	assert.Contains(t, out, "Withdrawal rejected: insufficient funds")
	assert.Contains(t, out, "Transferred $50.00.")
	assert.Contains(t, out, "Transaction history for account")
	assert.Contains(t, out, "Session activity:")

	bal0, err := u.AccountBalance(0)
	require.NoError(t, err)
	bal1, err := u.AccountBalance(1)
	require.NoError(t, err)
	assert.Equal(t, "50.00", bal0.StringFixed(2))
	assert.Equal(t, "50.00", bal1.StringFixed(2))

	// The rejected withdrawal is not recorded.
	actions := make([]string, 0, trail.Len())
	for _, e := range trail.All() {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{
		auditlog.ActionLogin,
		auditlog.ActionDeposit,
		auditlog.ActionTransfer,
		auditlog.ActionLogout,
	}, actions)
}

func TestRun_InvalidMenuChoice(t *testing.T) {
	b, u := testBank(t)

	out := runScript(t, b, auditlog.New(),
		u.ID(), "1234",
		"9",
		"7",
	)

	assert.Contains(t, out, "Invalid choice. Please choose 1-7.")
}

func TestRun_InvalidAccountNumberReprompts(t *testing.T) {
	b, u := testBank(t)

	out := runScript(t, b, auditlog.New(),
		u.ID(), "1234",
		"4", "5", "abc", "1", "10.00", "",
		"7",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid account number. Please choose 1-2."))
	assert.Contains(t, out, "Deposited $10.00.")
}

func TestRun_InvalidAmountReprompts(t *testing.T) {
	b, u := testBank(t)

	out := runScript(t, b, auditlog.New(),
		u.ID(), "1234",
		"4", "1", "ten dollars", "10.00", "",
		"7",
	)

	assert.Contains(t, out, "Invalid amount. Please enter a number.")
	assert.Contains(t, out, "Deposited $10.00.")
}

func TestRun_LogoutReturnsToLogin(t *testing.T) {
	b, u := testBank(t)
	trail := auditlog.New()

	out := runScript(t, b, trail,
		u.ID(), "1234",
		"6", // log out
		u.ID(), "1234",
		"7", // quit
	)

	assert.Equal(t, 2, strings.Count(out, "Welcome to Test Bank"))

	actions := make([]string, 0, trail.Len())
	for _, e := range trail.All() {
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{
		auditlog.ActionLogin,
		auditlog.ActionLogout,
		auditlog.ActionLogin,
		auditlog.ActionLogout,
	}, actions)
}

func TestRun_AccountSummary(t *testing.T) {
	b, u := testBank(t)

	out := runScript(t, b, auditlog.New(),
		u.ID(), "1234",
		"1",
		"7",
	)

	acct0, err := u.Account(0)
	require.NoError(t, err)
	assert.Contains(t, out, acct0.SummaryLine())
}
