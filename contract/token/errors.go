package token

import "errors"

var (
	ErrOnlyFactory         = errors.New("only factory")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAmountOverflow      = errors.New("balance does not fit in 128 bits")
)
