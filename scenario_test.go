package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intKey is a Key whose hash is the key's own value, matching the toy
// hash(x) = x used by these literal scenarios.
type intKey int

func (k intKey) Hash32() uint32   { return uint32(k) }
func (k intKey) Equal(o Key) bool { other, isInt := o.(intKey); return isInt && other == k }

// zeroHashKey is a Key whose hash is pinned to 0 regardless of identity, so
// several of these can be forced into one Collision bucket.
type zeroHashKey string

func (k zeroHashKey) Hash32() uint32   { return 0 }
func (k zeroHashKey) Equal(o Key) bool { ok, isZ := o.(zeroHashKey); return isZ && ok == k }

func TestScenarioA_TwoDistinctSlots(t *testing.T) {
	m := Empty[string]().Insert(intKey(1), "a").Insert(intKey(2), "b")

	v1, ok1 := m.Get(intKey(1))
	require.True(t, ok1)
	assert.Equal(t, "a", v1)

	v2, ok2 := m.Get(intKey(2))
	require.True(t, ok2)
	assert.Equal(t, "b", v2)

	assert.Equal(t, 2, m.Size())
}

func TestScenarioB_SharedSlotAtShiftZero(t *testing.T) {
	// 1 == 0b00001, 33 == 0b100001: both select slot 1 at shift 0, diverge
	// at shift 5, forcing a two-level sub-trie.
	m := Empty[string]().Insert(intKey(1), "a").Insert(intKey(33), "b")

	v33, ok := m.Get(intKey(33))
	require.True(t, ok)
	assert.Equal(t, "b", v33)

	v1, ok := m.Get(intKey(1))
	require.True(t, ok)
	assert.Equal(t, "a", v1)

	assert.Equal(t, 2, m.Size())
}

func TestScenarioC_Collision(t *testing.T) {
	m := Empty[int]().
		Insert(zeroHashKey("alpha"), 1).
		Insert(zeroHashKey("beta"), 2).
		Insert(zeroHashKey("gamma"), 3).
		Remove(zeroHashKey("beta"))

	_, ok := m.Get(zeroHashKey("beta"))
	assert.False(t, ok)
	assert.Equal(t, 2, m.Size())

	c, isCollision := m.root.(*collisionNode[int])
	require.True(t, isCollision)
	assert.Len(t, c.entries, 2)
}

func TestScenarioD_Contraction(t *testing.T) {
	// Three hashes sharing every bit except the lowest 5-bit slice (the one
	// consumed at the root, shift 0), which is 3, 7, and 19 respectively.
	const shared uint32 = 1 << 10
	h := func(slot uint32) uint32 { return shared | slot }

	m := Empty[string]().
		Insert(intKeyWithHash{1, h(3)}, "x").
		Insert(intKeyWithHash{2, h(7)}, "y").
		Insert(intKeyWithHash{3, h(19)}, "z").
		Remove(intKeyWithHash{1, h(3)}).
		Remove(intKeyWithHash{2, h(7)})

	assert.Equal(t, 1, m.Size())
	l, isLeaf := m.root.(*leafNode[string])
	require.True(t, isLeaf, "contraction must collapse straight down to the surviving Leaf")
	assert.Equal(t, "z", l.val)
}

// intKeyWithHash is a Key carrying an explicit hash, used when a scenario
// needs to pin the hash independently of the key's identity.
type intKeyWithHash struct {
	id int
	h  uint32
}

func (k intKeyWithHash) Hash32() uint32 { return k.h }
func (k intKeyWithHash) Equal(o Key) bool {
	other, ok := o.(intKeyWithHash)
	return ok && other.id == k.id
}

func TestScenarioE_Sharing(t *testing.T) {
	m := Empty[int]()
	for i := 1; i <= 1000; i++ {
		m = m.Insert(intKey(i), i)
	}
	m2 := m.Insert(intKey(5000), 5000)

	v1, ok1 := m.Get(intKey(1))
	require.True(t, ok1)
	assert.Equal(t, 1, v1)

	v1b, ok1b := m2.Get(intKey(1))
	require.True(t, ok1b)
	assert.Equal(t, 1, v1b)

	shared := 0
	before := m.NodePointers()
	beforeSet := make(map[uintptr]struct{}, len(before))
	for _, p := range before {
		beforeSet[p] = struct{}{}
	}
	for _, p := range m2.NodePointers() {
		if _, ok := beforeSet[p]; ok {
			shared++
		}
	}
	assert.Greater(t, shared, len(before)*9/10, "inserting one new key must leave the vast majority of nodes shared")
}

func TestScenarioF_IdempotentUpdateIsIdentity(t *testing.T) {
	m1 := Empty[string]().Insert(intKey(1), "a")
	m2 := m1.Insert(intKey(1), "a")
	assert.Same(t, m1.root, m2.root)
}
