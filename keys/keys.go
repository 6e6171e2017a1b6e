// Package keys provides ready-made hamt.Key implementations for the two
// most common key types, string and int, so callers don't have to write
// their own Hash32/Equal pair for the common case.
package keys

import (
	"encoding/binary"
	"hash/fnv"

	hamt "github.com/gil-shafran/go-phamt"
)

// StringKey is a hamt.Key backed by a string, hashed with 32-bit FNV-1a.
type StringKey string

// Hash32 implements hamt.Key.
func (k StringKey) Hash32() uint32 {
	h := fnv.New32a()
	h.Write([]byte(k))
	return h.Sum32()
}

// Equal implements hamt.Key.
func (k StringKey) Equal(other hamt.Key) bool {
	o, ok := other.(StringKey)
	return ok && k == o
}

// IntKey is a hamt.Key backed by an int. Hashing goes through FNV-1a over
// the value's 8-byte little-endian encoding rather than using the int
// itself as the hash, so that the low bits of the key — which for small
// sequential ints would otherwise land every key in the same handful of
// trie slots — get spread across the full 32 bits.
type IntKey int

// Hash32 implements hamt.Key.
func (k IntKey) Hash32() uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	h := fnv.New32a()
	h.Write(buf[:])
	return h.Sum32()
}

// Equal implements hamt.Key.
func (k IntKey) Equal(other hamt.Key) bool {
	o, ok := other.(IntKey)
	return ok && k == o
}
