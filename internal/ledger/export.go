package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/logging"
	"github.com/minibank/minibank/internal/store"
)

// ExportHistory streams one account's session history to w as CSV and
// reports how many transactions were written.
func (l *Ledger) ExportHistory(ctx context.Context, id string, w io.Writer) (int, error) {
	acct, ok := l.accounts[id]
	if !ok {
		return 0, fmt.Errorf("ExportHistory: %w", domain.ErrAccountNotFound)
	}
	n, err := store.WriteHistory(w, id, acct.History())
	if err != nil {
		return n, fmt.Errorf("ExportHistory: %w", err)
	}
	logging.FromContext(ctx).Info("history exported", "account_id", id, "transactions", n)
	return n, nil
}
