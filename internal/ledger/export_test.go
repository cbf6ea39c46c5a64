package ledger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/testutil"
)

func TestLedger_ExportHistory(t *testing.T) {
	ctx := context.Background()
	l, _ := testutil.NewLedger(t)
	acct := testutil.SeedAccount(t, l, testutil.Profile("Elizabeth", "Martinez"), "75.00")

	_, err := l.Withdraw(ctx, acct.ID, testutil.MustDecimal(t, "25"))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := l.ExportHistory(ctx, acct.ID, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "account_id,kind,amount,timestamp,counterparty_account_id", lines[0])
	assert.Contains(t, lines[1], ",deposit,75.00,")
	assert.Contains(t, lines[2], ",withdrawal,25.00,")
}

func TestLedger_ExportHistory_UnknownAccount(t *testing.T) {
	l, _ := testutil.NewLedger(t)

	var buf bytes.Buffer
	_, err := l.ExportHistory(context.Background(), "no-such-id", &buf)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Zero(t, buf.Len())
}
