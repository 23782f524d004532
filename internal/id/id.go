// Package id generates the fixed-length numeric identifiers used for
// users and accounts.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Numeric returns a random numeric string of exactly length digits,
// chosen uniformly (leading zeros allowed). Uniqueness is the caller's
// concern.
func Numeric(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid ID length %d", length)
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// Valid reports whether s is a numeric string of exactly length digits.
func Valid(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
