package domain

import "errors"

// Domain errors. Check them with errors.Is.
var (
	// ErrInsufficientFunds is returned when a transaction exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)
