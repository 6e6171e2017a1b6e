package hamt

// node is the closed sum type every trie position is one of: emptyNode,
// *leafNode, *collisionNode, *bitmapNode, or *fullNode. Go has no sealed
// union, so the five types listed above stand in for it; nothing outside
// this package is permitted to add a sixth.
//
// size is cached at construction time on every inner node, so it costs
// O(1) at any node rather than a tree walk — the "compute it eagerly"
// option spec.md's design notes allow in place of first-access
// memoization on a shared immutable value.
type node[V any] interface {
	size() int
	lookup(k Key, h uint32, shift uint) (V, bool)
	insert(shift uint, k Key, h uint32, v V) node[V]
	remove(k Key, h uint32, shift uint) node[V]
}

// singleNode is the common supertype of leafNode and collisionNode: the
// two variants that carry one stored hash and must be redistributed into
// a freshly built bitmapNode when a second, differently-hashed entry
// lands on top of them. It is also the only kind of node a bitmapNode may
// safely hoist in place of itself on contraction (see bitmapNode.remove):
// a Leaf or Collision doesn't care what shift it's addressed with, so
// elevating it one level costs nothing. An inner node hoisted the same way
// would silently be probed with the wrong 5-bit window of the hash from
// then on, so contraction never elevates one.
type singleNode[V any] interface {
	node[V]
	hashcode() uint32
}
