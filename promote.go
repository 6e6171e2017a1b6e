package hamt

// promote builds the bitmapNode that results when a second entry lands on
// top of a singleNode (a Leaf or a Collision) whose hash differs from the
// new entry's — spec.md §4.7. x is the existing singleNode, y the fresh
// Leaf being inserted; shift is the level of the slot x occupies, where the
// two hashes may still agree (then promote recurses one level deeper).
func promote[V any](shift uint, x singleNode[V], y *leafNode[V]) node[V] {
	ix := index(x.hashcode(), shift)
	iy := index(y.hash, shift)

	if ix != iy {
		bitmap := mask(ix) | mask(iy)
		children := make([]node[V], 2)
		if ix < iy {
			children[0], children[1] = x, node[V](y)
		} else {
			children[0], children[1] = node[V](y), x
		}
		return &bitmapNode[V]{bitmap: bitmap, children: children, count: x.size() + y.size()}
	}

	// The two hashes agree on this 5-bit slice too; recurse one level
	// deeper into the single occupied slot. Bounded by depth 7: either the
	// hashes fully agree (handled by collision-node creation at the leaf
	// level, one call up the stack) or they diverge before then.
	child := x.insert(shift+bitsPerLevel, y.key, y.hash, y.val)
	return &bitmapNode[V]{bitmap: mask(ix), children: []node[V]{child}, count: child.size()}
}
