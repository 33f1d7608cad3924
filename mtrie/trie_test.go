package mtrie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var (
		a, b = 1, 2
		tr   = New(KV[int]{1, &a}, KV[int]{0x100, &b}, KV[int]{1, &b})
	)

	assert.NotNil(t, tr)
	assert.Equal(t, uint64(2), tr.Count())
	assert.Same(t, &b, tr.Find(1))
	assert.Same(t, &b, tr.Find(0x100))
	assert.NoError(t, tr.Check())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	tr := New[string]()

	assert.True(t, tr.Empty())
	assert.Equal(t, uint64(0), tr.Count())
	assert.Nil(t, tr.Find(0))
	assert.Nil(t, tr.Find(MaxPath))

	tr.Remove(12345) // no-op

	assert.Equal(t, 0, tr.Len())
	assert.NoError(t, tr.Check())

	var nilTrie *Trie[string]

	assert.Equal(t, uint64(0), nilTrie.Count())
	assert.Nil(t, nilTrie.Find(1))
}

func TestFind(t *testing.T) {
	t.Parallel()

	var (
		val = "abc"
		tr  = New(KV[string]{0xDEAD_BEEF, &val})
	)

	for _, tcase := range []*struct {
		Key   uint64
		ExpOK bool
	}{
		{0, false},
		{0xEF, false},
		{0xBEEF, false},
		{0xDEAD_BEEF, true},
		{0xDEAD_BEEF | 1<<60, false},
		{0x1_DEAD_BEEF, false},
		{MaxPath, false},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#x", tcase.Key)
		)

		t.Run(name, func(t *testing.T) {
			actual, ok := tr.Get(tcase.Key)

			assert.Equal(t, tcase.ExpOK, ok)
			if tcase.ExpOK {
				assert.Same(t, &val, actual)
			} else {
				assert.Nil(t, actual)
			}
		})
	}
}

func TestInsert_Remove_Scenario(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		keys = []uint64{0, 1, 0x100, 0x10_0000_0000_0000}
		vals = make([]int, len(keys))
	)

	for i, key := range keys {
		vals[i] = i
		tr.Insert(key, &vals[i])
	}

	require.Equal(t, uint64(4), tr.Count())
	require.NoError(t, tr.Check())

	for i, key := range keys {
		assert.Same(t, &vals[i], tr.Find(key), "%#x", key)
	}

	tr.Remove(1)

	assert.Equal(t, uint64(3), tr.Count())
	assert.Nil(t, tr.Find(1))
	assert.Same(t, &vals[0], tr.Find(0))
	assert.Same(t, &vals[2], tr.Find(0x100))
	assert.Same(t, &vals[3], tr.Find(0x10_0000_0000_0000))
	assert.NoError(t, tr.Check())
}

func TestInsert_Overwrite(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		a, b = 1, 2
	)

	for _, key := range []uint64{0x42, 0x142, 0x1000_0000_0000_0142} {
		tr.Insert(key, &a)
		count := tr.Count()

		tr.Insert(key, &b)

		assert.Equal(t, count, tr.Count())
		assert.Same(t, &b, tr.Find(key))
	}

	assert.NoError(t, tr.Check())
}

func TestInsert_NilRemoves(t *testing.T) {
	t.Parallel()

	var (
		tr  = New[int]()
		val = 7
	)

	tr.Insert(0x77, &val)
	tr.Insert(0x177, &val)
	require.Equal(t, uint64(2), tr.Count())

	tr.Insert(0x77, nil)

	assert.Equal(t, uint64(1), tr.Count())
	assert.Nil(t, tr.Find(0x77))
	assert.Same(t, &val, tr.Find(0x177))

	tr.Insert(0x99, nil) // missing key - no-op

	assert.Equal(t, uint64(1), tr.Count())
	assert.NoError(t, tr.Check())
}

func TestRemove_Idempotent(t *testing.T) {
	t.Parallel()

	var (
		tr  = New[int]()
		val = 1
	)

	tr.Insert(5, &val)
	tr.Insert(5|1<<60, &val)

	tr.Remove(5)
	assert.Equal(t, uint64(1), tr.Count())
	assert.Nil(t, tr.Find(5))

	tr.Remove(5)
	assert.Equal(t, uint64(1), tr.Count())
	assert.Same(t, &val, tr.Find(5|1<<60))
	assert.NoError(t, tr.Check())
}

func TestSplit_Collapse(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		vals = [4]int{}
	)

	tr.Insert(0, &vals[0])
	tr.Insert(1, &vals[1])
	tr.Insert(0x100, &vals[2])

	// 0 and 0x100 share the root slot: one depth-0 node holding both inline
	stats := tr.Stats()
	assert.Equal(t, uint64(2), stats.RootSlots)
	assert.Equal(t, uint64(1), stats.InternalNodes)
	assert.Equal(t, uint64(3), stats.InlineEntries)

	// 1<<52 collides with 0 down to depth 11
	tr.Insert(0x10_0000_0000_0000, &vals[3])

	stats = tr.Stats()
	assert.Equal(t, uint64(12), stats.InternalNodes)
	assert.Equal(t, uint64(4), stats.InlineEntries)
	assert.Equal(t, uint64(0), stats.TerminalNodes)
	require.NoError(t, tr.Check())

	// removing it folds the chain back to a single node
	tr.Remove(0x10_0000_0000_0000)

	stats = tr.Stats()
	assert.Equal(t, uint64(1), stats.InternalNodes)
	assert.Equal(t, uint64(3), stats.InlineEntries)
	require.NoError(t, tr.Check())

	tr.Remove(0x100)

	stats = tr.Stats()
	assert.Equal(t, uint64(0), stats.InternalNodes)
	assert.Equal(t, uint64(2), stats.InlineEntries)
	assert.Equal(t, uint64(2), tr.Count())
	require.NoError(t, tr.Check())
}

func TestSplit_Terminal(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		vals = [16]int{}
		base = uint64(0x0ABC_DEF0_1234_5678)
	)

	for i := range vals {
		tr.Insert(base|uint64(i)<<terminalShift, &vals[i])
	}

	stats := tr.Stats()
	assert.Equal(t, uint64(16), tr.Count())
	assert.Equal(t, uint64(terminalDepth), stats.InternalNodes)
	assert.Equal(t, uint64(1), stats.TerminalNodes)
	assert.Equal(t, uint64(16), stats.TerminalEntries)
	assert.Equal(t, uint64(0), stats.InlineEntries)
	require.NoError(t, tr.Check())

	for i := range vals {
		assert.Same(t, &vals[i], tr.Find(base|uint64(i)<<terminalShift))
	}

	// leave one key: the whole chain folds into a root inline entry
	for i := 1; i < len(vals); i++ {
		tr.Remove(base | uint64(i)<<terminalShift)
		require.NoError(t, tr.Check())
	}

	stats = tr.Stats()
	assert.Equal(t, uint64(1), tr.Count())
	assert.Equal(t, uint64(0), stats.InternalNodes)
	assert.Equal(t, uint64(0), stats.TerminalNodes)
	assert.Equal(t, uint64(1), stats.InlineEntries)
	assert.Same(t, &vals[0], tr.Find(base))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	var (
		tr   = New[int]()
		keys = getKeys(50_000)
		val  = 1
	)

	for _, key := range keys {
		tr.Insert(key, &val)
	}

	require.Equal(t, uint64(len(keys)), tr.Count()) // no collisions in 50k random keys
	require.NoError(t, tr.Check())

	for _, key := range keys {
		tr.Remove(key)
	}

	assert.Equal(t, uint64(0), tr.Count())
	assert.Equal(t, Stats{Keys: 0, Bytes: tr.Stats().Bytes}, tr.Stats())

	for _, key := range keys {
		if tr.Find(key) != nil {
			t.Fatalf("found removed key %#x", key)
		}
	}
}

func TestSequential_Bases(t *testing.T) {
	t.Parallel()

	const (
		epochs = 5
		size   = 100_000
		stride = 0x300000
	)

	var (
		tr  = New[int]()
		val = 1
	)

	for ep := uint64(0); ep < epochs; ep++ {
		for j := uint64(0); j < size; j++ {
			tr.Insert(ep*stride+j, &val)
		}
	}

	require.Equal(t, uint64(epochs*size), tr.Count())

	for ep := uint64(1); ep < epochs; ep++ {
		for j := uint64(0); j < size; j++ {
			tr.Remove(ep*stride + j)
		}
	}

	require.Equal(t, uint64(size), tr.Count())

	for ep := uint64(0); ep < epochs+2; ep++ {
		for j := uint64(0); j < size; j++ {
			found := tr.Find(ep*stride+j) != nil
			if found != (ep == 0) {
				t.Fatalf("key %#x: found=%v", ep*stride+j, found)
			}
		}
	}

	assert.NoError(t, tr.Check())
}

func TestRandom_Reference(t *testing.T) {
	t.Parallel()

	const total = 20_000

	var (
		tr    = New[int]()
		state = map[uint64]*int{}
		gen   = newKeyGen(seed, 8)
		vals  = make([]int, total)
	)

	for i := 0; i < total; i++ {
		key := gen.Key()

		switch gen.faker.Number(0, 9) {
		case 0, 1, 2, 3:
			// remove a known key
			for k := range state {
				key = k
				break
			}
			tr.Remove(key)
			delete(state, key)
		case 4:
			tr.Remove(key)
			delete(state, key)
		default:
			tr.Insert(key, &vals[i])
			state[key] = &vals[i]
		}

		if tr.Count() != uint64(len(state)) {
			t.Fatalf("op %d: count is %d, expected %d", i, tr.Count(), len(state))
		}
		if tr.Find(key) != state[key] {
			t.Fatalf("op %d: key %#x: found %p, expected %p", i, key, tr.Find(key), state[key])
		}
		if i%500 == 0 {
			require.NoError(t, tr.Check(), "op %d", i)
		}
	}

	require.NoError(t, tr.Check())

	for key, val := range state {
		assert.Same(t, val, tr.Find(key), "%#x", key)
	}
}
