package template

// Registry holds the types of one kind in document order, indexed by
// id. When ids repeat, lookups return the first declaration.
//
// A nil *Registry is empty.
type Registry[T any] struct {
	items []*T
	byID  map[string]*T
}

func newRegistry[T any](items []*T, id func(*T) string) *Registry[T] {
	r := &Registry[T]{items: items, byID: make(map[string]*T, len(items))}
	for _, it := range items {
		if _, dup := r.byID[id(it)]; !dup {
			r.byID[id(it)] = it
		}
	}
	return r
}

// Get returns the type with the id.
func (r *Registry[T]) Get(id string) (*T, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.byID[id]
	return t, ok
}

// All returns every type in document order, duplicates included. The
// slice must not be modified.
func (r *Registry[T]) All() []*T {
	if r == nil {
		return nil
	}
	return r.items
}

// Len returns the number of types, duplicates included.
func (r *Registry[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}
