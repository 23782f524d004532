// Package session runs the interactive text-menu loop against the
// bookkeeping core: a login prompt followed by a per-user menu for
// summaries, history, withdrawals, deposits and transfers.
//
// All input validation that belongs to the front end (menu choices,
// account numbers, amount syntax) happens here; amount policy
// (positivity, sufficient funds) is enforced by the core and surfaced
// through its errors.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/bank"
)

// Session drives one interactive banking session. Input and output are
// injected so the whole loop is testable.
type Session struct {
	bank  *bank.Bank
	trail *auditlog.Trail
	log   *slog.Logger
	in    *bufio.Scanner
	out   io.Writer
}

// New creates a session over the given bank.
func New(b *bank.Bank, trail *auditlog.Trail, logger *slog.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		bank:  b,
		trail: trail,
		log:   logger,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops: login prompt until a user authenticates, then the user
// menu until log-out (back to login) or quit (session ends). Input
// exhaustion ends the session cleanly.
func (s *Session) Run() error {
	for {
		user, ok := s.promptLogin()
		if !ok {
			return nil
		}

		quit := s.userMenu(user)
		if quit {
			s.printActivity()
			return nil
		}
	}
}

// promptLogin re-prompts until a user ID and PIN authenticate. The
// failure message never says which of the two was wrong.
func (s *Session) promptLogin() (*bank.User, bool) {
	for {
		fmt.Fprintf(s.out, "\nWelcome to %s\n\n", s.bank.Name())

		userID, ok := s.readLine("Enter user ID: ")
		if !ok {
			return nil, false
		}
		pin, ok := s.readLine("Enter pin: ")
		if !ok {
			return nil, false
		}

		user, err := s.bank.Login(userID, pin)
		if err != nil {
			fmt.Fprintln(s.out, "Incorrect user ID/pin combination. Please try again.")
			continue
		}

		s.trail.Record(user.ID(), auditlog.ActionLogin, "")
		s.log.Info("user logged in", "user_id", user.ID())
		return user, true
	}
}

// userMenu serves one authenticated user. Returns true if the session
// should quit entirely, false to return to the login prompt.
func (s *Session) userMenu(user *bank.User) bool {
	for {
		fmt.Fprintf(s.out, "\nWelcome, %s %s. What would you like to do?\n",
			user.FirstName(), user.LastName())
		fmt.Fprintln(s.out, "  1) Show account summary")
		fmt.Fprintln(s.out, "  2) Show transaction history")
		fmt.Fprintln(s.out, "  3) Withdraw")
		fmt.Fprintln(s.out, "  4) Deposit")
		fmt.Fprintln(s.out, "  5) Transfer")
		fmt.Fprintln(s.out, "  6) Log out")
		fmt.Fprintln(s.out, "  7) Quit")

		choice, ok := s.readLine("Enter choice: ")
		if !ok {
			return true
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.showSummary(user)
		case "2":
			if !s.showHistory(user) {
				return true
			}
		case "3":
			if !s.withdraw(user) {
				return true
			}
		case "4":
			if !s.deposit(user) {
				return true
			}
		case "5":
			if !s.transfer(user) {
				return true
			}
		case "6":
			s.trail.Record(user.ID(), auditlog.ActionLogout, "")
			s.log.Info("user logged out", "user_id", user.ID())
			return false
		case "7":
			s.trail.Record(user.ID(), auditlog.ActionLogout, "quit")
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please choose 1-7.")
		}
	}
}

func (s *Session) showSummary(user *bank.User) {
	fmt.Fprintln(s.out, "\nYour accounts:")
	for i, line := range user.AccountSummaryLines() {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, line)
	}
}

func (s *Session) showHistory(user *bank.User) bool {
	idx, ok := s.promptAccountIndex(user, "show history for")
	if !ok {
		return false
	}
	acct, err := user.Account(idx)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return true
	}

	fmt.Fprintf(s.out, "\nTransaction history for account %s:\n", acct.ID())
	for _, tx := range acct.TransactionHistory() {
		fmt.Fprintf(s.out, "  %s\n", tx.SummaryLine())
	}
	return true
}

func (s *Session) withdraw(user *bank.User) bool {
	idx, ok := s.promptAccountIndex(user, "withdraw from")
	if !ok {
		return false
	}
	amount, ok := s.promptAmount("withdraw")
	if !ok {
		return false
	}
	memo, ok := s.readLine("Enter a memo: ")
	if !ok {
		return false
	}

	if err := user.Withdraw(idx, amount, memo); err != nil {
		fmt.Fprintf(s.out, "Withdrawal rejected: %v\n", err)
		return true
	}

	s.trail.Record(user.ID(), auditlog.ActionWithdraw, amount.StringFixed(2))
	fmt.Fprintf(s.out, "Withdrew $%s.\n", amount.StringFixed(2))
	return true
}

func (s *Session) deposit(user *bank.User) bool {
	idx, ok := s.promptAccountIndex(user, "deposit to")
	if !ok {
		return false
	}
	amount, ok := s.promptAmount("deposit")
	if !ok {
		return false
	}
	memo, ok := s.readLine("Enter a memo: ")
	if !ok {
		return false
	}

	if err := user.Deposit(idx, amount, memo); err != nil {
		fmt.Fprintf(s.out, "Deposit rejected: %v\n", err)
		return true
	}

	s.trail.Record(user.ID(), auditlog.ActionDeposit, amount.StringFixed(2))
	fmt.Fprintf(s.out, "Deposited $%s.\n", amount.StringFixed(2))
	return true
}

func (s *Session) transfer(user *bank.User) bool {
	from, ok := s.promptAccountIndex(user, "transfer from")
	if !ok {
		return false
	}
	to, ok := s.promptAccountIndex(user, "transfer to")
	if !ok {
		return false
	}
	amount, ok := s.promptAmount("transfer")
	if !ok {
		return false
	}

	if err := user.Transfer(from, to, amount, ""); err != nil {
		fmt.Fprintf(s.out, "Transfer rejected: %v\n", err)
		return true
	}

	s.trail.Record(user.ID(), auditlog.ActionTransfer, amount.StringFixed(2))
	fmt.Fprintf(s.out, "Transferred $%s.\n", amount.StringFixed(2))
	return true
}

// promptAccountIndex shows the numbered account list and reads a
// 1-based account number, re-prompting until it is valid. Returns a
// zero-based index.
func (s *Session) promptAccountIndex(user *bank.User, verb string) (int, bool) {
	s.showSummary(user)
	for {
		line, ok := s.readLine(fmt.Sprintf("Enter the account number to %s: ", verb))
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > user.NumAccounts() {
			fmt.Fprintf(s.out, "Invalid account number. Please choose 1-%d.\n", user.NumAccounts())
			continue
		}
		return n - 1, true
	}
}

// promptAmount reads a decimal amount, re-prompting on unparsable
// input. Amount policy is left to the core.
func (s *Session) promptAmount(verb string) (decimal.Decimal, bool) {
	for {
		line, ok := s.readLine(fmt.Sprintf("Enter the amount to %s: $", verb))
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid amount. Please enter a number.")
			continue
		}
		return amount, true
	}
}

// printActivity dumps the audit trail at the end of the session.
func (s *Session) printActivity() {
	entries := s.trail.All()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(s.out, "\nSession activity:")
	for _, e := range entries {
		fmt.Fprintf(s.out, "  %s\n", e.SummaryLine())
	}
	fmt.Fprintln(s.out, "Goodbye.")
}

// readLine prints a prompt and reads one input line. Returns false
// when input is exhausted.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.in.Text(), true
}
