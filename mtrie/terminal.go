package mtrie

import "math/bits"

// terminal is the last level of the trie. Its position fixes the top nibble of a key,
// so values are stored raw.
type terminal[V any] struct {
	used uint16 // bit i is set when vals[i] != nil
	vals [fanout]*V
}

const terminalShift = rootWidth + nibbleWidth*terminalDepth // 60

func (t *terminal[V]) insert(_, path uint64, val *V, count *uint64) {
	idx := path & nibbleMask

	if t.vals[idx] == nil {
		*count++
	}
	t.vals[idx] = val
	t.used |= 1 << idx
}

func (t *terminal[V]) remove(_, path uint64, count *uint64) {
	idx := path & nibbleMask

	if t.vals[idx] != nil {
		*count--
	}
	t.vals[idx] = nil
	t.used &^= 1 << idx
}

func (t *terminal[V]) find(_, path uint64) *V {
	return t.vals[path&nibbleMask]
}

func (t *terminal[V]) next(prefix, bound uint64, tight bool) (uint64, *V) {
	var start int

	if tight {
		start = int(bound >> terminalShift)
	}

	used := t.used >> start << start
	if used == 0 {
		return 0, nil
	}

	idx := bits.TrailingZeros16(used)

	return prefix | uint64(idx)<<terminalShift, t.vals[idx]
}

func (t *terminal[V]) each(prefix uint64, fn func(uint64, *V) bool) bool {
	for used := t.used; used != 0; used &= used - 1 {
		idx := bits.TrailingZeros16(used)

		if !fn(prefix|uint64(idx)<<terminalShift, t.vals[idx]) {
			return false
		}
	}

	return true
}

func (t *terminal[V]) empty() bool {
	return t.used == 0
}

func (t *terminal[V]) lone(sample uint64) (uint64, *V, bool) {
	if t.used == 0 || t.used&(t.used-1) != 0 {
		return 0, nil, false
	}

	idx := bits.TrailingZeros16(t.used)

	return lowBits(sample, terminalDepth) | uint64(idx)<<terminalShift, t.vals[idx], true
}
