package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/minibank/minibank/internal/domain"
)

var historyHeader = []string{
	"account_id", "kind", "amount", "timestamp", "counterparty_account_id",
}

// WriteHistory streams an account's transactions to w as CSV, one row per
// transaction in ledger order. It returns the number of transaction rows
// written.
func WriteHistory(w io.Writer, accountID string, seq iter.Seq[domain.Transaction]) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return 0, fmt.Errorf("WriteHistory: %w", err)
	}
	n := 0
	for tx := range seq {
		row := []string{
			accountID,
			string(tx.Kind),
			tx.Amount.StringFixed(2),
			tx.Timestamp.Format(time.RFC3339Nano),
			tx.Counterparty,
		}
		if err := cw.Write(row); err != nil {
			return n, fmt.Errorf("WriteHistory: %w", err)
		}
		n++
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("WriteHistory: %w", err)
	}
	return n, nil
}
