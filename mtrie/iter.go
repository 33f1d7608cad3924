package mtrie

// Iter is a forward-only cursor over the keys of a Trie in canonical order.
//
// Every step looks the successor up from the root, so the cursor stays valid across
// inserts and removes; keys added behind the cursor are not visited.
type Iter[V any] struct {
	trie *Trie[V]
	key  uint64
	val  *V
}

// Iterate returns a cursor positioned at the first key in canonical order.
func (t *Trie[V]) Iterate() *Iter[V] {
	it := &Iter[V]{trie: t}
	it.key, it.val = t.FindNext(0)

	return it
}

// More reports whether the cursor is positioned at a key.
func (it *Iter[V]) More() bool {
	return it.val != nil
}

// Advance moves the cursor to the next key in canonical order.
func (it *Iter[V]) Advance() {
	if it.val == nil {
		return
	}

	path := Path(it.key)
	if path == MaxPath {
		it.val = nil
		return
	}

	// the successor of a path is the next number: the last digit is incremented and
	// the carry moves toward the root digit
	it.key, it.val = it.trie.FindNext(KeyOf(path + 1))
}

func (it *Iter[V]) Key() uint64 {
	return it.key
}

func (it *Iter[V]) Value() *V {
	return it.val
}

// Each calls a handler for all keys in canonical order.
// It returns whether all keys were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Trie[V]) Each(handler func(key uint64, val *V) bool) bool {
	if t == nil {
		return true
	}

	for idx := t.nextUsed(0); idx < rootFanout; idx = t.nextUsed(idx + 1) {
		if !t.slots[idx].each(uint64(idx), handler) {
			return false
		}
	}

	return true
}

// Keys returns all keys in canonical order.
func (t *Trie[V]) Keys() []uint64 {
	keys := make([]uint64, 0, t.Count())

	t.Each(func(key uint64, _ *V) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// Items returns all key-value pairs in canonical order.
func (t *Trie[V]) Items() []KV[V] {
	items := make([]KV[V], 0, t.Count())

	t.Each(func(key uint64, val *V) bool {
		items = append(items, KV[V]{key, val})
		return true
	})

	return items
}
