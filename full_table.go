package hamt

// fullNode is the dense inner-node variant: all 32 slots are occupied, so
// there is no bitmap to consult — every lookup descends directly.
type fullNode[V any] struct {
	children [32]node[V]
	count    int
}

func (t *fullNode[V]) size() int { return t.count }

func (t *fullNode[V]) lookup(k Key, h uint32, shift uint) (V, bool) {
	i := index(h, shift)
	return t.children[i].lookup(k, h, shift+bitsPerLevel)
}

func (t *fullNode[V]) insert(shift uint, k Key, h uint32, v V) node[V] {
	i := index(h, shift)
	child := t.children[i]
	newChild := child.insert(shift+bitsPerLevel, k, h, v)
	if newChild == child {
		return t
	}
	nt := &fullNode[V]{children: t.children, count: t.count - child.size() + newChild.size()}
	nt.children[i] = newChild
	return nt
}

func (t *fullNode[V]) remove(k Key, h uint32, shift uint) node[V] {
	i := index(h, shift)
	child := t.children[i]
	newChild := child.remove(k, h, shift+bitsPerLevel)
	if newChild == child {
		return t
	}

	if _, gone := newChild.(emptyNode[V]); gone {
		// demote: a Full node always has 32 occupied slots, so losing one
		// always lands at popcount 31 — never low enough to need the
		// single-child contraction a Bitmapped node applies on remove.
		children := make([]node[V], 0, 31)
		var bitmap uint32
		for idx := uint(0); idx < 32; idx++ {
			if idx == i {
				continue
			}
			children = append(children, t.children[idx])
			bitmap |= mask(idx)
		}
		return &bitmapNode[V]{bitmap: bitmap, children: children, count: t.count - 1}
	}

	nt := &fullNode[V]{children: t.children, count: t.count - 1}
	nt.children[i] = newChild
	return nt
}
