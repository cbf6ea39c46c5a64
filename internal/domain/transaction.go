package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit     TransactionKind = "deposit"
	KindWithdrawal  TransactionKind = "withdrawal"
	KindTransferIn  TransactionKind = "transfer_in"
	KindTransferOut TransactionKind = "transfer_out"
)

func (k TransactionKind) IsValid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferIn, KindTransferOut:
		return true
	}
	return false
}

// isOutflow reports whether the kind reduces the owning account's balance.
func (k TransactionKind) isOutflow() bool {
	return k == KindWithdrawal || k == KindTransferOut
}

func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("ParseTransactionKind: unknown kind %q", s)
	}
	return k, nil
}

// Transaction is one immutable ledger event. Counterparty is set only for
// transfer kinds and names the other account of the transfer.
type Transaction struct {
	ID           string
	Kind         TransactionKind
	Amount       decimal.Decimal
	Timestamp    time.Time
	Counterparty string
}

func NewTransaction(kind TransactionKind, amount decimal.Decimal, counterparty string) (Transaction, error) {
	if amount.Sign() <= 0 {
		return Transaction{}, fmt.Errorf("NewTransaction: %w", ErrInvalidAmount)
	}
	return Transaction{
		ID:           uuid.NewString(),
		Kind:         kind,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
		Counterparty: counterparty,
	}, nil
}

// Signed returns the balance delta the transaction applied: negative for
// withdrawals and outgoing transfers, positive otherwise.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind.isOutflow() {
		return t.Amount.Neg()
	}
	return t.Amount
}
