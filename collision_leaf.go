package hamt

// kv is a stored (key, value) pair, the payload of a leafNode or a
// collisionNode bucket entry.
type kv[V any] struct {
	key Key
	val V
}

// collisionNode is a bucket of entries that share one full 32-bit hash but
// differ by key: seven levels consume every bit of the hash, so no trie
// depth can discriminate between them.
type collisionNode[V any] struct {
	hash    uint32
	entries []kv[V]
}

func newCollision[V any](h uint32, entries ...kv[V]) *collisionNode[V] {
	c := &collisionNode[V]{hash: h}
	c.entries = append(c.entries, entries...)
	return c
}

func (c *collisionNode[V]) hashcode() uint32 { return c.hash }

func (c *collisionNode[V]) size() int { return len(c.entries) }

func (c *collisionNode[V]) lookup(k Key, _ uint32, _ uint) (V, bool) {
	for _, e := range c.entries {
		if e.key.Equal(k) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

func (c *collisionNode[V]) insert(shift uint, k Key, h uint32, v V) node[V] {
	if h != c.hash {
		return promote[V](shift, c, newLeaf(k, h, v))
	}

	next := make([]kv[V], len(c.entries))
	copy(next, c.entries)
	for i, e := range next {
		if e.key.Equal(k) {
			next[i] = kv[V]{e.key, v}
			return &collisionNode[V]{hash: c.hash, entries: next}
		}
	}
	next = append(next, kv[V]{k, v})
	return &collisionNode[V]{hash: c.hash, entries: next}
}

func (c *collisionNode[V]) remove(k Key, _ uint32, _ uint) node[V] {
	idx := -1
	for i, e := range c.entries {
		if e.key.Equal(k) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}

	if len(c.entries) == 2 {
		var survivor kv[V]
		if idx == 0 {
			survivor = c.entries[1]
		} else {
			survivor = c.entries[0]
		}
		return newLeaf(survivor.key, c.hash, survivor.val)
	}

	next := make([]kv[V], 0, len(c.entries)-1)
	next = append(next, c.entries[:idx]...)
	next = append(next, c.entries[idx+1:]...)
	return &collisionNode[V]{hash: c.hash, entries: next}
}
