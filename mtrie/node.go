package mtrie

import "math/bits"

// node is an internal level of the trie (depths 0..12).
type node[V any] struct {
	depth uint8
	used  uint16 // bit i is set when slots[i] is not empty
	slots [fanout]slot[V]
}

func (n *node[V]) insert(key, path uint64, val *V, count *uint64) {
	idx := path & nibbleMask

	n.slots[idx].insert(key, path>>nibbleWidth, int(n.depth)+1, val, count)
	n.used |= 1 << idx
}

func (n *node[V]) remove(key, path uint64, count *uint64) {
	idx := path & nibbleMask

	if n.slots[idx].remove(key, path>>nibbleWidth, count) {
		n.used &^= 1 << idx
	}
}

func (n *node[V]) find(key, path uint64) *V {
	return n.slots[path&nibbleMask].find(key, path>>nibbleWidth)
}

func (n *node[V]) next(prefix, bound uint64, tight bool) (uint64, *V) {
	var (
		depth = int(n.depth)
		shift = shiftOf(depth)
		start int
	)

	if tight {
		start = digitAt(bound, depth)
	}

	// skip the positions below start
	for used := n.used >> start << start; used != 0; used &= used - 1 {
		idx := bits.TrailingZeros16(used)

		key, val := n.slots[idx].next(prefix|uint64(idx)<<shift, bound, tight && idx == start)
		if val != nil {
			return key, val
		}
	}

	return 0, nil
}

func (n *node[V]) each(prefix uint64, fn func(uint64, *V) bool) bool {
	shift := shiftOf(int(n.depth))

	for used := n.used; used != 0; used &= used - 1 {
		idx := bits.TrailingZeros16(used)

		if !n.slots[idx].each(prefix|uint64(idx)<<shift, fn) {
			return false
		}
	}

	return true
}

func (n *node[V]) empty() bool {
	return n.used == 0
}

func (n *node[V]) lone(uint64) (uint64, *V, bool) {
	if n.used == 0 || n.used&(n.used-1) != 0 {
		return 0, nil, false
	}

	s := &n.slots[bits.TrailingZeros16(n.used)]
	if s.kind != inlineSlot {
		return 0, nil, false
	}

	return s.key, s.val, true
}
