package store

// Entity is a record with a stable integer identity.
type Entity interface {
	// Key returns the record's identity. It must not change after the
	// record has been added to a repository.
	Key() int
}

// Stocked is an Entity with a mutable, non-negative quantity.
// WithQty returns a copy of the record carrying the new quantity.
type Stocked[T any] interface {
	Entity
	Qty() int
	WithQty(q int) T
}

// Repository wraps a Store and keys its records by identity.
// No two records in a Repository share a key.
type Repository[T Stocked[T]] struct {
	items *Store[T]
	keys  map[int]struct{}
}

// NewRepository creates an empty Repository.
func NewRepository[T Stocked[T]]() *Repository[T] {
	return &Repository[T]{
		items: New[T](),
		keys:  make(map[int]struct{}),
	}
}

// Add inserts item. It returns ErrDuplicateKey, leaving the repository
// unchanged, if a record with the same key is already present.
func (r *Repository[T]) Add(item T) error {
	key := item.Key()
	if _, ok := r.keys[key]; ok {
		return keyError("add", key, ErrDuplicateKey)
	}
	r.items.Add(item)
	r.keys[key] = struct{}{}
	return nil
}

// GetByID returns a copy of the record with the given key, or ErrNotFound.
func (r *Repository[T]) GetByID(id int) (T, error) {
	if _, ok := r.keys[id]; !ok {
		var zero T
		return zero, keyError("get", id, ErrNotFound)
	}
	item, _ := r.items.FindFirst(hasKey[T](id))
	return item, nil
}

// Remove deletes the record with the given key, or returns ErrNotFound.
func (r *Repository[T]) Remove(id int) error {
	if _, ok := r.keys[id]; !ok {
		return keyError("remove", id, ErrNotFound)
	}
	r.items.RemoveFirst(hasKey[T](id))
	delete(r.keys, id)
	return nil
}

// UpdateQuantity sets the quantity of the record with the given key.
// A negative quantity is rejected with ErrInvalidQuantity before the key
// is looked up; a missing key yields ErrNotFound. On failure nothing changes.
func (r *Repository[T]) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return keyError("update", id, ErrInvalidQuantity)
	}
	item, err := r.GetByID(id)
	if err != nil {
		return err
	}
	r.items.ReplaceFirst(hasKey[T](id), item.WithQty(quantity))
	return nil
}

// All returns a copy of the records in insertion order.
func (r *Repository[T]) All() []T {
	return r.items.All()
}

// Len returns the number of records held.
func (r *Repository[T]) Len() int {
	return r.items.Len()
}

func hasKey[T Entity](id int) func(T) bool {
	return func(item T) bool { return item.Key() == id }
}
