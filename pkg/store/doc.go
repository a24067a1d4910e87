// Package store provides generic in-memory collections of identifiable records.
//
// Two collection types are provided:
//
//   - [Store]: an ordered collection with predicate lookup and removal.
//     No uniqueness is enforced and absence is reported with a bool.
//   - [Repository]: wraps a Store and enforces identity uniqueness. Lookup,
//     removal and quantity updates fail with typed errors.
//
// # Usage
//
//	repo := store.NewRepository[domain.GroceryItem]()
//	if err := repo.Add(milk); err != nil {
//	    return err
//	}
//	if err := repo.UpdateQuantity(milk.ID, 40); errors.Is(err, store.ErrNotFound) {
//	    // ...
//	}
//
// # Value Semantics
//
// Records are held by value. All and GetByID return copies, and a quantity
// update replaces the stored record. A copy obtained before an update keeps
// the old quantity; read the record again to observe the change.
//
// # Concurrency
//
// Neither type is safe for concurrent use. Callers sharing an instance
// across goroutines must serialize access themselves.
package store
