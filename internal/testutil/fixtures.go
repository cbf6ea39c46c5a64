// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/ledger"
	"github.com/minibank/minibank/internal/store"
)

// NewLedger opens an empty ledger backed by a CSV store in a fresh temp dir.
func NewLedger(t *testing.T) (*ledger.Ledger, *store.FileStore) {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "accounts.csv"))
	l, err := ledger.Open(context.Background(), st, nil)
	require.NoError(t, err)
	return l, st
}

// Profile returns a valid profile for tests to tweak.
func Profile(first, last string) domain.Profile {
	return domain.Profile{
		FirstName: first,
		LastName:  last,
		Age:       34,
		State:     "Colorado",
		Job:       domain.JobEmployed,
		Type:      domain.TypeChecking,
	}
}

// SeedAccount creates an account through the normal creation path and fails
// the test if creation does not succeed.
func SeedAccount(t *testing.T, l *ledger.Ledger, p domain.Profile, opening string) *domain.Account {
	t.Helper()
	acct, err := l.CreateAccount(context.Background(), p, MustDecimal(t, opening))
	require.NoError(t, err)
	return acct
}

func MustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// EqualDecimal asserts numeric equality regardless of exponent.
func EqualDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got)
}
