// Package ledger coordinates accounts against a persistent account table.
//
// Every mutation follows the same discipline: stage clones of the affected
// accounts, apply the change to the clones, rewrite the full table with the
// clones substituted in, and only after the write succeeds swap the clones
// into the live map. A failed write therefore leaves both the file and the
// in-memory state exactly as they were.
//
// A Ledger is not safe for concurrent use; callers invoke one operation at
// a time.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/logging"
	"github.com/minibank/minibank/internal/store"
)

// AccountStore is the persistence surface the ledger needs.
type AccountStore interface {
	Load() ([]store.AccountRecord, error)
	Save([]store.AccountRecord) error
}

// Seed is the material for one account created when the backing table does
// not exist yet.
type Seed struct {
	Profile domain.Profile
	Opening decimal.Decimal
}

// SeedFunc produces the accounts used to populate a brand-new ledger.
type SeedFunc func() []Seed

type Ledger struct {
	store    AccountStore
	accounts map[string]*domain.Account
	order    []string // insertion order, drives listing and persistence
}

func New(st AccountStore) *Ledger {
	return &Ledger{
		store:    st,
		accounts: make(map[string]*domain.Account),
	}
}

// Open loads the account table from st. When the table is absent or holds
// no accounts and seed is non-nil, the seeded accounts are created through
// the normal account constructor and persisted before Open returns.
func Open(ctx context.Context, st AccountStore, seed SeedFunc) (*Ledger, error) {
	l := New(st)

	records, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("Open: %w: %w", domain.ErrPersistenceFailure, err)
	}
	for _, rec := range records {
		acct := domain.Restore(rec.ID, rec.Profile, rec.Balance)
		l.accounts[acct.ID] = acct
		l.order = append(l.order, acct.ID)
	}
	if len(l.order) > 0 || seed == nil {
		return l, nil
	}

	for _, sd := range seed() {
		acct, err := domain.NewAccount(sd.Profile, sd.Opening)
		if err != nil {
			return nil, fmt.Errorf("Open: seed account: %w", err)
		}
		l.accounts[acct.ID] = acct
		l.order = append(l.order, acct.ID)
	}
	if err := l.Flush(ctx); err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	logging.FromContext(ctx).Info("seeded new account table", "accounts", len(l.order))
	return l, nil
}

// Len reports how many accounts the ledger holds.
func (l *Ledger) Len() int { return len(l.order) }

// Flush rewrites the whole table from current in-memory state.
func (l *Ledger) Flush(ctx context.Context) error {
	return l.persist(l.rowsWith())
}

func (l *Ledger) persist(rows []store.AccountRecord) error {
	if err := l.store.Save(rows); err != nil {
		return fmt.Errorf("persist: %w: %w", domain.ErrPersistenceFailure, err)
	}
	return nil
}

// rowsWith builds the table rows with the staged accounts substituted for
// their live counterparts. Staged accounts the ledger has never seen are
// appended at the end in argument order.
func (l *Ledger) rowsWith(staged ...*domain.Account) []store.AccountRecord {
	replaced := make(map[string]*domain.Account, len(staged))
	for _, a := range staged {
		replaced[a.ID] = a
	}

	rows := make([]store.AccountRecord, 0, len(l.order)+len(staged))
	for _, id := range l.order {
		if a, ok := replaced[id]; ok {
			rows = append(rows, recordOf(a))
			delete(replaced, id)
			continue
		}
		rows = append(rows, recordOf(l.accounts[id]))
	}
	for _, a := range staged {
		if _, ok := replaced[a.ID]; ok {
			rows = append(rows, recordOf(a))
		}
	}
	return rows
}

func (l *Ledger) rowsWithout(id string) []store.AccountRecord {
	rows := make([]store.AccountRecord, 0, len(l.order))
	for _, oid := range l.order {
		if oid == id {
			continue
		}
		rows = append(rows, recordOf(l.accounts[oid]))
	}
	return rows
}

func recordOf(a *domain.Account) store.AccountRecord {
	return store.AccountRecord{ID: a.ID, Profile: a.Profile, Balance: a.Balance()}
}
