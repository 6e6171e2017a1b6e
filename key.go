package hamt

// Key is the contract a map key must satisfy. The map never computes or
// reseeds a hash itself — per the key contract, producing a stable 32-bit
// hash is the key type's responsibility, and hash equality of equal keys
// is mandatory for correctness. An unstable hash or an Equal that
// disagrees with it is undefined behavior from the map's point of view;
// nothing here attempts to detect it.
type Key interface {
	// Hash32 returns a stable 32-bit hash of the key. Calling it twice on
	// equal keys must return the same value.
	Hash32() uint32

	// Equal reports whether this key and other denote the same entry.
	Equal(other Key) bool
}
