package ledger

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/logging"
)

// SortKey orders a listing. The zero value keeps insertion order.
type SortKey string

const (
	SortNone    SortKey = ""
	SortName    SortKey = "name"
	SortBalance SortKey = "balance"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortNone, SortName, SortBalance:
		return true
	}
	return false
}

// ListFilter narrows and orders a listing. Zero-valued fields match
// everything.
type ListFilter struct {
	Type   domain.AccountType
	State  string
	SortBy SortKey
}

func (l *Ledger) CreateAccount(ctx context.Context, p domain.Profile, opening decimal.Decimal) (*domain.Account, error) {
	log := logging.FromContext(ctx)

	acct, err := domain.NewAccount(p, opening)
	if err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}
	if err := l.persist(l.rowsWith(acct)); err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}
	l.accounts[acct.ID] = acct
	l.order = append(l.order, acct.ID)

	log.Info("account created",
		"account_id", acct.ID,
		"type", acct.Type,
		"balance", acct.Balance().StringFixed(2),
	)

	return acct, nil
}

// GetAccount returns the live account. The pointer goes stale after the next
// mutation of that account; re-fetch instead of caching it.
func (l *Ledger) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	acct, ok := l.accounts[id]
	if !ok {
		return nil, fmt.Errorf("GetAccount: %w", domain.ErrAccountNotFound)
	}
	return acct, nil
}

func (l *Ledger) UpdateAccount(ctx context.Context, id string, upd domain.ProfileUpdate) error {
	acct, ok := l.accounts[id]
	if !ok {
		return fmt.Errorf("UpdateAccount: %w", domain.ErrAccountNotFound)
	}
	staged := acct.Clone()
	if err := staged.UpdateProfile(upd); err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}
	if err := l.persist(l.rowsWith(staged)); err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}
	l.accounts[id] = staged

	logging.FromContext(ctx).Info("profile updated", "account_id", id)
	return nil
}

func (l *Ledger) DeleteAccount(ctx context.Context, id string) error {
	if _, ok := l.accounts[id]; !ok {
		return fmt.Errorf("DeleteAccount: %w", domain.ErrAccountNotFound)
	}
	if err := l.persist(l.rowsWithout(id)); err != nil {
		return fmt.Errorf("DeleteAccount: %w", err)
	}
	delete(l.accounts, id)
	l.order = slices.DeleteFunc(l.order, func(oid string) bool { return oid == id })

	logging.FromContext(ctx).Info("account deleted", "account_id", id)
	return nil
}

// ListAccounts returns a restartable sequence of account snapshots taken at
// call time. Later ledger mutations do not show up in the sequence.
func (l *Ledger) ListAccounts(f ListFilter) iter.Seq[domain.Account] {
	selected := make([]domain.Account, 0, len(l.order))
	for _, id := range l.order {
		acct := l.accounts[id]
		if f.Type != "" && acct.Type != f.Type {
			continue
		}
		if f.State != "" && !strings.EqualFold(acct.State, f.State) {
			continue
		}
		selected = append(selected, *acct.Clone())
	}

	switch f.SortBy {
	case SortName:
		slices.SortStableFunc(selected, compareByName)
	case SortBalance:
		// largest balance first
		slices.SortStableFunc(selected, func(a, b domain.Account) int {
			return b.Balance().Cmp(a.Balance())
		})
	}

	return func(yield func(domain.Account) bool) {
		for _, a := range selected {
			if !yield(a) {
				return
			}
		}
	}
}

func compareByName(a, b domain.Account) int {
	if c := strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName))
}
