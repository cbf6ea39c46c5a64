// Package domain holds the banking ledger's core types: accounts, their
// immutable transaction history, and the validation rules both obey.
package domain

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a balance-holding entity with an append-only transaction
// history. The balance never goes negative, and every successful mutation
// appends exactly one Transaction, so the balance always equals the signed
// sum of the history on top of the balance the account was restored with.
type Account struct {
	ID string
	Profile

	balance decimal.Decimal
	history []Transaction
}

// NewAccount creates an account with a fresh id. A positive opening balance
// is recorded as an initial deposit transaction so the history fully explains
// the balance.
func NewAccount(p Profile, opening decimal.Decimal) (*Account, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("NewAccount: %w", err)
	}
	if opening.Sign() < 0 {
		return nil, fmt.Errorf("NewAccount: opening balance: %w", ErrInvalidAmount)
	}
	a := &Account{ID: uuid.NewString(), Profile: p}
	if opening.Sign() > 0 {
		if _, err := a.apply(KindDeposit, opening, ""); err != nil {
			return nil, fmt.Errorf("NewAccount: %w", err)
		}
	}
	return a, nil
}

// Restore rebuilds an account from persisted state. The history starts empty:
// the store keeps account rows only, so transactions do not survive a restart.
func Restore(id string, p Profile, balance decimal.Decimal) *Account {
	return &Account{ID: id, Profile: p, balance: balance}
}

func (a *Account) Balance() decimal.Decimal { return a.balance }

func (a *Account) HistoryLen() int { return len(a.history) }

func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	tx, err := a.apply(KindDeposit, amount, "")
	if err != nil {
		return Transaction{}, fmt.Errorf("Deposit: %w", err)
	}
	return tx, nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	tx, err := a.apply(KindWithdrawal, amount, "")
	if err != nil {
		return Transaction{}, fmt.Errorf("Withdraw: %w", err)
	}
	return tx, nil
}

// ApplyTransferOut debits the source leg of a transfer; the counterparty is
// the receiving account.
func (a *Account) ApplyTransferOut(amount decimal.Decimal, toID string) (Transaction, error) {
	tx, err := a.apply(KindTransferOut, amount, toID)
	if err != nil {
		return Transaction{}, fmt.Errorf("ApplyTransferOut: %w", err)
	}
	return tx, nil
}

func (a *Account) ApplyTransferIn(amount decimal.Decimal, fromID string) (Transaction, error) {
	tx, err := a.apply(KindTransferIn, amount, fromID)
	if err != nil {
		return Transaction{}, fmt.Errorf("ApplyTransferIn: %w", err)
	}
	return tx, nil
}

// apply validates, then commits the balance change and the history append
// together. On error the account is untouched.
func (a *Account) apply(kind TransactionKind, amount decimal.Decimal, counterparty string) (Transaction, error) {
	tx, err := NewTransaction(kind, amount, counterparty)
	if err != nil {
		return Transaction{}, err
	}
	if kind.isOutflow() && amount.GreaterThan(a.balance) {
		return Transaction{}, fmt.Errorf("balance %s short of %s: %w",
			a.balance.StringFixed(2), amount.StringFixed(2), ErrInsufficientFunds)
	}
	a.balance = a.balance.Add(tx.Signed())
	a.history = append(a.history, tx)
	return tx, nil
}

// UpdateProfile patches non-financial attributes. Validation runs over the
// whole patch before anything is assigned, so a rejected update changes
// nothing. Balance and history are never touched.
func (a *Account) UpdateProfile(u ProfileUpdate) error {
	if err := u.validate(); err != nil {
		return fmt.Errorf("UpdateProfile: %w", err)
	}
	if u.FirstName != nil {
		a.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		a.LastName = *u.LastName
	}
	if u.Age != nil {
		a.Age = *u.Age
	}
	if u.State != nil {
		a.State = *u.State
	}
	if u.Job != nil {
		a.Job = *u.Job
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	return nil
}

// History yields the account's transactions in chronological order. The
// sequence is restartable and reflects the history as of the call.
func (a *Account) History() iter.Seq[Transaction] {
	hist := a.history
	return func(yield func(Transaction) bool) {
		for _, tx := range hist {
			if !yield(tx) {
				return
			}
		}
	}
}

// FilterHistory is History restricted to one transaction kind.
func (a *Account) FilterHistory(kind TransactionKind) iter.Seq[Transaction] {
	hist := a.history
	return func(yield func(Transaction) bool) {
		for _, tx := range hist {
			if tx.Kind != kind {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Clone returns a deep copy, the staging primitive for the ledger's
// flush-before-commit writes.
func (a *Account) Clone() *Account {
	cp := *a
	cp.history = slices.Clone(a.history)
	return &cp
}
