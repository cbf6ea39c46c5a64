package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidProfile      = errors.New("invalid account profile")
	ErrInvalidField        = errors.New("invalid field value")
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")
	ErrPersistenceFailure  = errors.New("account store unavailable")
)
