package bank

import "errors"

// Domain errors. The session layer translates these into prompts; the
// core never panics on bad input.
var (
	// ErrAuthFailed is returned for any failed login. It deliberately
	// does not distinguish an unknown user ID from a wrong PIN.
	ErrAuthFailed = errors.New("incorrect user ID or pin")

	// ErrAmountNotPositive rejects deposits, withdrawals and transfers
	// of zero or negative amounts.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects withdrawals and transfers that
	// exceed the source account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount rejects transfers where source and destination
	// are the same account.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrIndexOutOfRange rejects account indexes outside 0..NumAccounts-1.
	ErrIndexOutOfRange = errors.New("account index out of range")
)
