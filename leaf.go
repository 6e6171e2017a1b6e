package hamt

import "reflect"

// leafNode is a single (key, hash, value) triple — the H == hash(key)
// invariant is established once at construction and never rechecked.
type leafNode[V any] struct {
	hash uint32
	key  Key
	val  V
}

func newLeaf[V any](k Key, h uint32, v V) *leafNode[V] {
	return &leafNode[V]{hash: h, key: k, val: v}
}

func (l *leafNode[V]) hashcode() uint32 { return l.hash }

func (l *leafNode[V]) size() int { return 1 }

func (l *leafNode[V]) lookup(k Key, _ uint32, _ uint) (V, bool) {
	if l.key.Equal(k) {
		return l.val, true
	}
	var zero V
	return zero, false
}

func (l *leafNode[V]) insert(shift uint, k Key, h uint32, v V) node[V] {
	if l.key.Equal(k) {
		if valueEqual(l.val, v) {
			return l
		}
		return newLeaf(k, h, v)
	}
	if l.hash == h {
		return newCollision(h, kv[V]{l.key, l.val}, kv[V]{k, v})
	}
	return promote[V](shift, l, newLeaf(k, h, v))
}

func (l *leafNode[V]) remove(k Key, _ uint32, _ uint) node[V] {
	if l.key.Equal(k) {
		return emptyNode[V]{}
	}
	return l
}

// valueEqual implements the stability optimization described in spec.md
// §4.3: insert skips rebuilding a Leaf when both key and value already
// match. Values here are an arbitrary V, which need not be comparable
// with ==, so this uses reflect.DeepEqual rather than the == operator —
// comparing two non-comparable interface{} dynamic values with == panics
// at runtime in Go. reflect.DeepEqual never panics: it compares slices,
// maps and structs element by element, and reports false for any two
// non-nil func values, so a Leaf holding a func value is always rebuilt.
func valueEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}
