package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/logging"
)

// TransferReceipt records both legs of a completed transfer.
type TransferReceipt struct {
	Outgoing    domain.Transaction
	Incoming    domain.Transaction
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

func (l *Ledger) Deposit(ctx context.Context, id string, amount decimal.Decimal) (domain.Transaction, error) {
	log := logging.FromContext(ctx)

	acct, ok := l.accounts[id]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("Deposit: %w", domain.ErrAccountNotFound)
	}
	staged := acct.Clone()
	tx, err := staged.Deposit(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("Deposit: %w", err)
	}
	if err := l.persist(l.rowsWith(staged)); err != nil {
		return domain.Transaction{}, fmt.Errorf("Deposit: %w", err)
	}
	l.accounts[id] = staged

	log.Info("deposit applied",
		"account_id", id,
		"amount", amount.StringFixed(2),
		"balance", staged.Balance().StringFixed(2),
	)

	return tx, nil
}

func (l *Ledger) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (domain.Transaction, error) {
	log := logging.FromContext(ctx)

	acct, ok := l.accounts[id]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("Withdraw: %w", domain.ErrAccountNotFound)
	}
	staged := acct.Clone()
	tx, err := staged.Withdraw(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("Withdraw: %w", err)
	}
	if err := l.persist(l.rowsWith(staged)); err != nil {
		return domain.Transaction{}, fmt.Errorf("Withdraw: %w", err)
	}
	l.accounts[id] = staged

	log.Info("withdrawal applied",
		"account_id", id,
		"amount", amount.StringFixed(2),
		"balance", staged.Balance().StringFixed(2),
	)

	return tx, nil
}

// Transfer moves amount between two accounts as one atomic step: both legs
// land, get persisted together, and only then become visible. Any failure
// leaves both accounts exactly as they were.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (*TransferReceipt, error) {
	log := logging.FromContext(ctx)

	from, ok := l.accounts[fromID]
	if !ok {
		return nil, fmt.Errorf("Transfer: source: %w", domain.ErrAccountNotFound)
	}
	to, ok := l.accounts[toID]
	if !ok {
		return nil, fmt.Errorf("Transfer: destination: %w", domain.ErrAccountNotFound)
	}
	if fromID == toID {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrSameAccountTransfer)
	}

	stagedFrom, stagedTo := from.Clone(), to.Clone()
	out, err := stagedFrom.ApplyTransferOut(amount, toID)
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}
	in, err := stagedTo.ApplyTransferIn(amount, fromID)
	if err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}
	if err := l.persist(l.rowsWith(stagedFrom, stagedTo)); err != nil {
		return nil, fmt.Errorf("Transfer: %w", err)
	}
	l.accounts[fromID] = stagedFrom
	l.accounts[toID] = stagedTo

	log.Info("transfer applied",
		"from_account_id", fromID,
		"to_account_id", toID,
		"amount", amount.StringFixed(2),
	)

	return &TransferReceipt{
		Outgoing:    out,
		Incoming:    in,
		FromBalance: stagedFrom.Balance(),
		ToBalance:   stagedTo.Balance(),
	}, nil
}
