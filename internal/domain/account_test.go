package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAccount(t *testing.T, opening string) *Account {
	t.Helper()
	a, err := NewAccount(validProfile(), dec(opening))
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("positive opening balance becomes a deposit", func(t *testing.T) {
		a := newTestAccount(t, "250.00")

		assert.NotEmpty(t, a.ID)
		assert.True(t, a.Balance().Equal(dec("250.00")))
		require.Equal(t, 1, a.HistoryLen())
		for tx := range a.History() {
			assert.Equal(t, KindDeposit, tx.Kind)
			assert.True(t, tx.Amount.Equal(dec("250.00")))
			assert.Empty(t, tx.Counterparty)
		}
	})

	t.Run("zero opening balance leaves history empty", func(t *testing.T) {
		a, err := NewAccount(validProfile(), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, a.Balance().IsZero())
		assert.Equal(t, 0, a.HistoryLen())
	})

	t.Run("negative opening balance", func(t *testing.T) {
		_, err := NewAccount(validProfile(), dec("-10"))
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("invalid profile", func(t *testing.T) {
		p := validProfile()
		p.Age = 9
		_, err := NewAccount(p, decimal.Zero)
		require.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := newTestAccount(t, "1")
		b := newTestAccount(t, "1")
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestAccount_Deposit(t *testing.T) {
	a := newTestAccount(t, "6033.79")

	tx, err := a.Deposit(dec("1000"))
	require.NoError(t, err)
	assert.Equal(t, KindDeposit, tx.Kind)
	assert.True(t, a.Balance().Equal(dec("7033.79")), "got %s", a.Balance())
	assert.Equal(t, 2, a.HistoryLen())

	_, err = a.Deposit(decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, a.Balance().Equal(dec("7033.79")))
	assert.Equal(t, 2, a.HistoryLen(), "a rejected deposit appends nothing")
}

func TestAccount_Withdraw(t *testing.T) {
	a := newTestAccount(t, "100.00")

	tx, err := a.Withdraw(dec("40"))
	require.NoError(t, err)
	assert.Equal(t, KindWithdrawal, tx.Kind)
	assert.True(t, a.Balance().Equal(dec("60.00")))

	// down to exactly zero
	_, err = a.Withdraw(dec("60"))
	require.NoError(t, err)
	assert.True(t, a.Balance().IsZero())

	_, err = a.Withdraw(dec("0.01"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, a.Balance().IsZero())
	assert.Equal(t, 3, a.HistoryLen())
}

func TestAccount_TransferLegs(t *testing.T) {
	src := newTestAccount(t, "500.00")
	dst := newTestAccount(t, "100.00")

	out, err := src.ApplyTransferOut(dec("500"), dst.ID)
	require.NoError(t, err)
	assert.Equal(t, KindTransferOut, out.Kind)
	assert.Equal(t, dst.ID, out.Counterparty)
	assert.True(t, src.Balance().IsZero())

	in, err := dst.ApplyTransferIn(dec("500"), src.ID)
	require.NoError(t, err)
	assert.Equal(t, KindTransferIn, in.Kind)
	assert.Equal(t, src.ID, in.Counterparty)
	assert.True(t, dst.Balance().Equal(dec("600.00")))

	_, err = src.ApplyTransferOut(dec("0.01"), dst.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestAccount_UpdateProfile(t *testing.T) {
	first := "Patricia"
	badAge := MaxAge + 1
	goodAge := 45
	job := JobRetired

	t.Run("patch applies only the set fields", func(t *testing.T) {
		a := newTestAccount(t, "10")

		err := a.UpdateProfile(ProfileUpdate{FirstName: &first, Age: &goodAge, Job: &job})
		require.NoError(t, err)
		assert.Equal(t, "Patricia", a.FirstName)
		assert.Equal(t, 45, a.Age)
		assert.Equal(t, JobRetired, a.Job)
		assert.Equal(t, "Smith", a.LastName)
		assert.Equal(t, "Colorado", a.State)
	})

	t.Run("one bad field rejects the whole patch", func(t *testing.T) {
		a := newTestAccount(t, "10")

		err := a.UpdateProfile(ProfileUpdate{FirstName: &first, Age: &badAge})
		require.ErrorIs(t, err, ErrInvalidField)
		assert.Equal(t, "James", a.FirstName, "valid fields of a rejected patch are not applied")
		assert.Equal(t, 34, a.Age)
	})

	t.Run("money is out of reach", func(t *testing.T) {
		a := newTestAccount(t, "10")

		require.NoError(t, a.UpdateProfile(ProfileUpdate{FirstName: &first}))
		assert.True(t, a.Balance().Equal(dec("10")))
		assert.Equal(t, 1, a.HistoryLen())
	})
}

func TestAccount_History(t *testing.T) {
	a := newTestAccount(t, "100")
	_, err := a.Withdraw(dec("30"))
	require.NoError(t, err)
	_, err = a.Deposit(dec("5"))
	require.NoError(t, err)

	t.Run("chronological order", func(t *testing.T) {
		var kinds []TransactionKind
		for tx := range a.History() {
			kinds = append(kinds, tx.Kind)
		}
		assert.Equal(t, []TransactionKind{KindDeposit, KindWithdrawal, KindDeposit}, kinds)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := a.History()
		first, second := 0, 0
		for range seq {
			first++
		}
		for range seq {
			second++
		}
		assert.Equal(t, 3, first)
		assert.Equal(t, first, second)
	})

	t.Run("filter by kind", func(t *testing.T) {
		count := 0
		for tx := range a.FilterHistory(KindDeposit) {
			count++
			assert.Equal(t, KindDeposit, tx.Kind)
		}
		assert.Equal(t, 2, count)

		count = 0
		for range a.FilterHistory(KindTransferIn) {
			count++
		}
		assert.Equal(t, 0, count)
	})

	t.Run("sequence snapshots the history at call time", func(t *testing.T) {
		seq := a.History()
		_, err := a.Deposit(dec("1"))
		require.NoError(t, err)

		count := 0
		for range seq {
			count++
		}
		assert.Equal(t, 3, count)
	})

	t.Run("balance equals the signed sum of history", func(t *testing.T) {
		sum := decimal.Zero
		for tx := range a.History() {
			sum = sum.Add(tx.Signed())
		}
		assert.True(t, sum.Equal(a.Balance()), "sum %s, balance %s", sum, a.Balance())
	})
}

func TestAccount_Clone(t *testing.T) {
	a := newTestAccount(t, "100")
	clone := a.Clone()

	_, err := clone.Deposit(dec("50"))
	require.NoError(t, err)
	_, err = clone.Withdraw(dec("10"))
	require.NoError(t, err)

	assert.True(t, a.Balance().Equal(dec("100")), "the cloned-from account must not move")
	assert.Equal(t, 1, a.HistoryLen())
	assert.True(t, clone.Balance().Equal(dec("140")))
	assert.Equal(t, 3, clone.HistoryLen())
}

func TestRestore(t *testing.T) {
	a := Restore("fixed-id", validProfile(), dec("42.00"))

	assert.Equal(t, "fixed-id", a.ID)
	assert.True(t, a.Balance().Equal(dec("42.00")))
	assert.Equal(t, 0, a.HistoryLen(), "history does not survive persistence")
}
