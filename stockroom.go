// Package stockroom provides typed in-memory record stores and a
// persisted log that survives between sessions.
//
// Example usage:
//
//	inv := stockroom.OpenLog[Item]("/var/lib/stockroom/inventory.json")
//	if out := inv.Load(); !out.OK() {
//	    // the log starts empty; out.Err says why
//	}
//	inv.Add(Item{ID: 1, Name: "Laptop", Quantity: 10})
//	inv.Save()
//
//	repo := stockroom.NewRepository[Item]()
//	if err := repo.Add(item); errors.Is(err, stockroom.ErrDuplicateKey) {
//	    ...
//	}
package stockroom

import (
	"github.com/bft-labs/stockroom/pkg/persist"
	"github.com/bft-labs/stockroom/pkg/store"
)

// Errors reported by repositories.
var (
	ErrDuplicateKey    = store.ErrDuplicateKey
	ErrNotFound        = store.ErrNotFound
	ErrInvalidQuantity = store.ErrInvalidQuantity
)

// Failure kinds reported by persisted logs.
var (
	ErrIO     = persist.ErrIO
	ErrEncode = persist.ErrEncode
	ErrDecode = persist.ErrDecode
)

// Outcome reports the result of a best-effort save or load.
type Outcome = persist.Outcome

// NewStore returns an empty store.
func NewStore[T any]() *store.Store[T] {
	return store.New[T]()
}

// NewRepository returns an empty repository keyed by record ID.
func NewRepository[T store.Stocked[T]]() *store.Repository[T] {
	return store.NewRepository[T]()
}

// OpenLog returns an empty log bound to the sink at path. The codec
// follows the path's extension unless an option overrides it. Nothing is
// read until Load.
func OpenLog[T any](path string, opts ...persist.Option) *persist.Log[T] {
	return persist.New[T](path, opts...)
}

// Version is the stockroom library version.
const Version = store.Version
