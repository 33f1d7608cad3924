package mtrie

import "math/bits"

// KV represents a key-value pair.
type KV[V any] struct {
	Key uint64
	Val *V
}

// Trie maps uint64 keys to non-nil *V values.
type Trie[V any] struct {
	count uint64
	used  [rootFanout / 64]uint64 // bit i is set when slots[i] is not empty
	slots [rootFanout]slot[V]
}

// New returns a new Trie optionally initialized with the given key-value pairs.
func New[V any](init ...KV[V]) *Trie[V] {
	t := &Trie[V]{}

	for _, kv := range init {
		t.Insert(kv.Key, kv.Val)
	}

	return t
}

// Count returns the number of keys in the trie.
func (t *Trie[V]) Count() uint64 {
	if t == nil {
		return 0
	}
	return t.count
}

// Len is Count as an int.
func (t *Trie[V]) Len() int {
	return int(t.Count())
}

func (t *Trie[V]) Empty() bool {
	return t.Count() == 0
}

// Insert associates a value with a key, replacing the previous one. Inserting nil is
// the same as Remove.
func (t *Trie[V]) Insert(key uint64, val *V) {
	if val == nil {
		t.Remove(key)
		return
	}

	idx := key & rootMask

	t.slots[idx].insert(key, key>>rootWidth, 0, val, &t.count)
	t.used[idx>>6] |= 1 << (idx & 63)
}

// Remove deletes a key from the trie. Removing a missing key does nothing.
func (t *Trie[V]) Remove(key uint64) {
	idx := key & rootMask

	if t.slots[idx].remove(key, key>>rootWidth, &t.count) {
		t.used[idx>>6] &^= 1 << (idx & 63)
	}
}

// Find returns the value associated with a key or nil.
func (t *Trie[V]) Find(key uint64) *V {
	if t == nil {
		return nil
	}
	return t.slots[key&rootMask].find(key, key>>rootWidth)
}

// Get returns the value associated with a key and whether the key is present.
func (t *Trie[V]) Get(key uint64) (*V, bool) {
	val := t.Find(key)
	return val, val != nil
}

// FindNext returns the first key at or after the given one in canonical order along
// with its value. The value is nil when there are no more keys.
func (t *Trie[V]) FindNext(key uint64) (uint64, *V) {
	if t == nil {
		return 0, nil
	}

	start := int(key & rootMask)

	for idx := t.nextUsed(start); idx < rootFanout; idx = t.nextUsed(idx + 1) {
		next, val := t.slots[idx].next(uint64(idx), key, idx == start)
		if val != nil {
			return next, val
		}
	}

	return 0, nil
}

// nextUsed returns the first non-empty root position at or after idx, or rootFanout.
func (t *Trie[V]) nextUsed(idx int) int {
	for ; idx < rootFanout; idx = (idx | 63) + 1 {
		if word := t.used[idx>>6] >> (idx & 63); word != 0 {
			return idx + bits.TrailingZeros64(word)
		}
	}
	return rootFanout
}
