package store

// Collection binds a store to one collection key with a concrete record
// type. Repositories hold one Collection per entity family.
type Collection[T any] struct {
	s   *Store
	key string
}

func NewCollection[T any](s *Store, key string) Collection[T] {
	return Collection[T]{s: s, key: key}
}

func (c Collection[T]) Key() string { return c.key }

// All reads the whole collection.
func (c Collection[T]) All() ([]T, error) {
	return ReadCollection[T](c.s, c.key)
}

// Replace writes the whole collection back.
func (c Collection[T]) Replace(items []T) error {
	return WriteCollection(c.s, c.key, items)
}

// Mutate runs one read-modify-write cycle under the collection's mutex,
// so two in-process mutations of the same key cannot interleave and lose
// an update. fn receives the current records and returns the records to
// persist; returning an error aborts without writing.
func (c Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	l := c.s.keyLock(c.key)
	l.Lock()
	defer l.Unlock()

	items, err := c.All()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.Replace(next)
}
