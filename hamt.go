// Package hamt implements a persistent associative map as a Hash Array
// Mapped Trie. See doc.go for the data-structure overview.
package hamt

// Map is a persistent, immutable associative array from Key to V. The zero
// value is not a valid Map; construct one with Empty, Of, From, or FromSeq.
// Every method that would mutate a conventional map instead returns a new
// Map, sharing as much of the old Map's internal structure as correctness
// allows.
type Map[V any] struct {
	root node[V]
	size int
}

// Empty returns the Map with no entries.
func Empty[V any]() Map[V] {
	return Map[V]{root: emptyNode[V]{}}
}

// Of builds a Map from a literal list of entries, later entries in the list
// winning over earlier ones for a repeated key.
func Of[V any](pairs ...Entry[V]) Map[V] {
	return From(pairs)
}

// From builds a Map from a slice of entries, later entries winning over
// earlier ones for a repeated key.
func From[V any](pairs []Entry[V]) Map[V] {
	m := Empty[V]()
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Val)
	}
	return m
}

// FromSeq builds a Map by pulling (Entry, ok) pairs from next until it
// returns ok == false. It exists for sources that produce entries one at a
// time rather than as a pre-built slice, e.g. another Map's Iterator.
func FromSeq[V any](next func() (Entry[V], bool)) Map[V] {
	m := Empty[V]()
	for {
		e, ok := next()
		if !ok {
			return m
		}
		m = m.Insert(e.Key, e.Val)
	}
}

// Get returns the value stored for k and true, or the zero V and false if k
// is absent.
func (m Map[V]) Get(k Key) (V, bool) {
	return m.root.lookup(k, k.Hash32(), 0)
}

// Contains reports whether k is present in m.
func (m Map[V]) Contains(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Size returns the number of entries in m.
func (m Map[V]) Size() int {
	return m.size
}

// IsEmpty reports whether m has no entries.
func (m Map[V]) IsEmpty() bool {
	return m.size == 0
}

// Insert returns a new Map with k mapped to v, leaving m unchanged. If k was
// already present its old value is replaced.
func (m Map[V]) Insert(k Key, v V) Map[V] {
	newRoot := m.root.insert(0, k, k.Hash32(), v)
	return Map[V]{root: newRoot, size: newRoot.size()}
}

// Remove returns a new Map with k absent, leaving m unchanged. Removing an
// absent key returns a Map equal to m.
func (m Map[V]) Remove(k Key) Map[V] {
	newRoot := m.root.remove(k, k.Hash32(), 0)
	return Map[V]{root: newRoot, size: newRoot.size()}
}

// Iterate returns a fresh Iterator positioned before the first entry.
func (m Map[V]) Iterate() *Iterator[V] {
	return newIterator(m.root)
}

// Keys returns every key in m, in the Iterator's traversal order.
func (m Map[V]) Keys() []Key {
	keys := make([]Key, 0, m.size)
	it := m.Iterate()
	for {
		e, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, e.Key)
	}
}

// Values returns every value in m, in the Iterator's traversal order.
func (m Map[V]) Values() []V {
	vals := make([]V, 0, m.size)
	it := m.Iterate()
	for {
		e, ok := it.Next()
		if !ok {
			return vals
		}
		vals = append(vals, e.Val)
	}
}

// Entries returns every (key, value) pair in m, in the Iterator's traversal
// order.
func (m Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.size)
	it := m.Iterate()
	for {
		e, ok := it.Next()
		if !ok {
			return entries
		}
		entries = append(entries, e)
	}
}
