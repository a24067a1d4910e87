package store

import (
	"errors"
	"fmt"
)

// Repository errors. Check them with errors.Is.
var (
	// ErrDuplicateKey is returned when adding a record whose key is already present.
	ErrDuplicateKey = errors.New("store: duplicate key")

	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidQuantity is returned when an update would make a quantity negative.
	ErrInvalidQuantity = errors.New("store: invalid quantity")
)

// KeyError records the repository operation and key that caused a failure.
type KeyError struct {
	Op  string // "add", "get", "remove", "update"
	Key int
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

func keyError(op string, key int, err error) error {
	return &KeyError{Op: op, Key: key, Err: err}
}
