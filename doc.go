/*
Package hamt implements a persistent (immutable, structurally-shared)
associative map as a Hash Array Mapped Trie (HAMT).

Every mutating operation — Insert, Remove — returns a new Map that shares
the maximum amount of internal structure with its predecessor, so deriving
a new version costs O(log32 N) node allocations and the old version remains
fully usable and safe to read concurrently.

The trie consumes a key's 32-bit hash five bits at a time. Five such levels
consume 25 bits, leaving the sixth level to consume the next 5 and the
seventh (and final) level to consume the two residual bits, for a maximum
depth of seven. Two keys whose full 32-bit hashes collide are held together
in a collision bucket rather than forcing an eighth level that does not
exist.

There are five node variants under the hood: an Empty node, a Leaf holding
a single (key, hash, value) triple, a Collision bucket for entries sharing
one hash, a Bitmapped node indexing 1 to 31 children by a 32-bit occupancy
bitmap, and a Full node for the case where all 32 children are occupied.
None of this is exposed outside the package; callers only ever see Map.
*/
package hamt
