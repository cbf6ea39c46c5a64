package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank/minibank/internal/domain"
)

func TestWriteHistory(t *testing.T) {
	acct, err := domain.NewAccount(domain.Profile{
		FirstName: "Maya",
		LastName:  "Okafor",
		Age:       34,
		State:     "Lagos",
		Job:       domain.JobEmployed,
		Type:      domain.TypeChecking,
	}, decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	_, err = acct.Deposit(decimal.RequireFromString("25.5"))
	require.NoError(t, err)
	_, err = acct.ApplyTransferOut(decimal.RequireFromString("30"), "peer-1")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := WriteHistory(&buf, acct.ID, acct.History())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "account_id,kind,amount,timestamp,counterparty_account_id", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], acct.ID+",deposit,100.00,"))
	assert.True(t, strings.HasPrefix(lines[2], acct.ID+",deposit,25.50,"))
	assert.True(t, strings.HasPrefix(lines[3], acct.ID+",transfer_out,30.00,"))
	assert.True(t, strings.HasSuffix(lines[3], ",peer-1"))
}

func TestWriteHistory_EmptySequence(t *testing.T) {
	acct := domain.Restore("abc", domain.Profile{
		FirstName: "Tunde",
		LastName:  "Adeyemi",
		Age:       71,
		State:     "Abuja",
		Job:       domain.JobRetired,
		Type:      domain.TypeSavings,
	}, decimal.Zero)

	var buf bytes.Buffer
	n, err := WriteHistory(&buf, acct.ID, acct.History())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "account_id,kind,amount,timestamp,counterparty_account_id\n", buf.String())
}
