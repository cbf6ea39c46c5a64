package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/ledger"
	"github.com/minibank/minibank/internal/testutil"
)

func TestLedger_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("with opening balance", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)

		acct, err := l.CreateAccount(ctx, testutil.Profile("Mary", "Garcia"), testutil.MustDecimal(t, "250.00"))
		require.NoError(t, err)
		assert.NotEmpty(t, acct.ID)
		testutil.EqualDecimal(t, "250.00", acct.Balance())
		assert.Equal(t, 1, acct.HistoryLen(), "opening balance is recorded as a deposit")
		assert.Equal(t, 1, l.Len())
	})

	t.Run("zero opening balance", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)

		acct, err := l.CreateAccount(ctx, testutil.Profile("John", "Miller"), decimal.Zero)
		require.NoError(t, err)
		testutil.EqualDecimal(t, "0", acct.Balance())
		assert.Equal(t, 0, acct.HistoryLen())
	})

	t.Run("invalid profile", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)
		p := testutil.Profile("", "Miller")

		_, err := l.CreateAccount(ctx, p, decimal.Zero)
		require.ErrorIs(t, err, domain.ErrInvalidProfile)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("negative opening balance", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)

		_, err := l.CreateAccount(ctx, testutil.Profile("Mary", "Garcia"), testutil.MustDecimal(t, "-1"))
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("persist failure keeps the ledger unchanged", func(t *testing.T) {
		st := &stubStore{saveErr: assert.AnError}
		l, err := ledger.Open(ctx, st, nil)
		require.NoError(t, err)

		_, err = l.CreateAccount(ctx, testutil.Profile("Mary", "Garcia"), decimal.Zero)
		require.ErrorIs(t, err, domain.ErrPersistenceFailure)
		assert.Equal(t, 0, l.Len())
	})
}

func TestLedger_GetAccount(t *testing.T) {
	ctx := context.Background()
	l, _ := testutil.NewLedger(t)
	acct := testutil.SeedAccount(t, l, testutil.Profile("William", "Brown"), "10.00")

	got, err := l.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got.ID)

	_, err = l.GetAccount(ctx, "no-such-id")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLedger_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	newAge := 45
	newState := "Georgia"
	badAge := 12

	t.Run("partial update", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)
		acct := testutil.SeedAccount(t, l, testutil.Profile("Patricia", "Martinez"), "10.00")

		err := l.UpdateAccount(ctx, acct.ID, domain.ProfileUpdate{Age: &newAge, State: &newState})
		require.NoError(t, err)

		got, err := l.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, 45, got.Age)
		assert.Equal(t, "Georgia", got.State)
		assert.Equal(t, "Patricia", got.FirstName, "untouched fields keep their values")
	})

	t.Run("rejected update changes nothing", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)
		acct := testutil.SeedAccount(t, l, testutil.Profile("Patricia", "Martinez"), "10.00")

		err := l.UpdateAccount(ctx, acct.ID, domain.ProfileUpdate{Age: &badAge, State: &newState})
		require.ErrorIs(t, err, domain.ErrInvalidField)

		got, err := l.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, 34, got.Age)
		assert.NotEqual(t, newState, got.State, "no field applies when any field is rejected")
	})

	t.Run("unknown account", func(t *testing.T) {
		l, _ := testutil.NewLedger(t)

		err := l.UpdateAccount(ctx, "no-such-id", domain.ProfileUpdate{Age: &newAge})
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestLedger_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	l, st := testutil.NewLedger(t)
	acct := testutil.SeedAccount(t, l, testutil.Profile("Michael", "Rodriguez"), "10.00")
	other := testutil.SeedAccount(t, l, testutil.Profile("Jennifer", "Smith"), "20.00")

	require.NoError(t, l.DeleteAccount(ctx, acct.ID))
	assert.Equal(t, 1, l.Len())

	_, err := l.GetAccount(ctx, acct.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = l.DeleteAccount(ctx, acct.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	// the deletion is already on disk
	l2, err := ledger.Open(ctx, st, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, l2.Len())
	_, err = l2.GetAccount(ctx, other.ID)
	require.NoError(t, err)
}

func TestLedger_ListAccounts(t *testing.T) {
	l, _ := testutil.NewLedger(t)

	pa := testutil.Profile("James", "Williams")
	pa.State = "Alaska"
	a := testutil.SeedAccount(t, l, pa, "50.00")

	pb := testutil.Profile("Elizabeth", "Brown")
	pb.Type = domain.TypeSavings
	pb.State = "Georgia"
	b := testutil.SeedAccount(t, l, pb, "300.00")

	pc := testutil.Profile("Robert", "Brown")
	pc.State = "alaska"
	c := testutil.SeedAccount(t, l, pc, "400.00")

	ids := func(f ledger.ListFilter) []string {
		var out []string
		for acct := range l.ListAccounts(f) {
			out = append(out, acct.ID)
		}
		return out
	}

	t.Run("insertion order by default", func(t *testing.T) {
		assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(ledger.ListFilter{}))
	})

	t.Run("filter by type", func(t *testing.T) {
		assert.Equal(t, []string{b.ID}, ids(ledger.ListFilter{Type: domain.TypeSavings}))
	})

	t.Run("filter by state is case-insensitive", func(t *testing.T) {
		assert.Equal(t, []string{a.ID, c.ID}, ids(ledger.ListFilter{State: "Alaska"}))
	})

	t.Run("sort by name", func(t *testing.T) {
		assert.Equal(t, []string{b.ID, c.ID, a.ID}, ids(ledger.ListFilter{SortBy: ledger.SortName}))
	})

	t.Run("sort by balance puts the largest first", func(t *testing.T) {
		assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(ledger.ListFilter{SortBy: ledger.SortBalance}))
	})

	t.Run("sequence restarts cleanly", func(t *testing.T) {
		seq := l.ListAccounts(ledger.ListFilter{})
		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}
		assert.Equal(t, first, second)
	})

	t.Run("snapshots do not track later mutations", func(t *testing.T) {
		seq := l.ListAccounts(ledger.ListFilter{})
		_, err := l.Deposit(context.Background(), a.ID, testutil.MustDecimal(t, "1000"))
		require.NoError(t, err)
		for acct := range seq {
			if acct.ID == a.ID {
				testutil.EqualDecimal(t, "50.00", acct.Balance())
			}
		}
	})
}
