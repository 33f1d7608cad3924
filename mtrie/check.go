package mtrie

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Check when the trie breaks one of its invariants.
var ErrCorrupt = errors.New("mtrie: corrupt trie")

// Check walks the whole trie and verifies that:
//
//   - the key counter equals the number of reachable keys;
//   - every child node holds at least two keys;
//   - every key sits on the slot chain selected by its digits;
//   - occupancy bitmaps agree with the slots.
func (t *Trie[V]) Check() error {
	var total uint64

	for idx := range t.slots {
		s := &t.slots[idx]

		if used := t.used[idx>>6]>>(idx&63)&1 != 0; used != (s.kind != emptySlot) {
			return fmt.Errorf("%w: root slot %#02x: bitmap says used=%v for %v", ErrCorrupt, idx, used, s)
		}

		num, err := s.check(uint64(idx), 0)
		if err != nil {
			return fmt.Errorf("root slot %#02x: %w", idx, err)
		}
		total += num
	}

	if total != t.count {
		return fmt.Errorf("%w: counter is %d, reachable keys %d", ErrCorrupt, t.count, total)
	}

	return nil
}

// check verifies a slot whose position fixes the key bits in prefix; depth is the
// depth a child of the slot has.
func (s *slot[V]) check(prefix uint64, depth int) (uint64, error) {
	switch s.kind {
	case emptySlot:
		if s.child != nil || s.val != nil {
			return 0, fmt.Errorf("%w: empty slot holds data", ErrCorrupt)
		}
		return 0, nil

	case inlineSlot:
		if s.val == nil {
			return 0, fmt.Errorf("%w: inline key %#016x has a nil value", ErrCorrupt, s.key)
		}
		if lowBits(s.key, depth) != prefix {
			return 0, fmt.Errorf("%w: inline key %#016x misplaced under prefix %#x", ErrCorrupt, s.key, prefix)
		}
		return 1, nil

	case childSlot:
		switch child := s.child.(type) {
		case nil:
			return 0, fmt.Errorf("%w: child slot without a node", ErrCorrupt)
		case *node[V]:
			if int(child.depth) != depth {
				return 0, fmt.Errorf("%w: node of depth %d found at depth %d", ErrCorrupt, child.depth, depth)
			}
		case *terminal[V]:
			if depth != terminalDepth {
				return 0, fmt.Errorf("%w: terminal node found at depth %d", ErrCorrupt, depth)
			}
		}

		num, err := s.child.check(prefix)
		if err != nil {
			return 0, err
		}
		if num < 2 {
			return 0, fmt.Errorf("%w: child under prefix %#x holds %d keys", ErrCorrupt, prefix, num)
		}
		return num, nil
	}

	return 0, fmt.Errorf("%w: unknown slot kind %d", ErrCorrupt, s.kind)
}

func (n *node[V]) check(prefix uint64) (uint64, error) {
	var (
		depth = int(n.depth)
		shift = shiftOf(depth)
		total uint64
	)

	for idx := range n.slots {
		s := &n.slots[idx]

		if used := n.used>>idx&1 != 0; used != (s.kind != emptySlot) {
			return 0, fmt.Errorf("%w: depth %d slot %d: bitmap says used=%v for %v", ErrCorrupt, depth, idx, used, s)
		}

		num, err := s.check(prefix|uint64(idx)<<shift, depth+1)
		if err != nil {
			return 0, fmt.Errorf("depth %d slot %d: %w", depth, idx, err)
		}
		total += num
	}

	return total, nil
}

func (t *terminal[V]) check(uint64) (uint64, error) {
	var total uint64

	for idx, val := range t.vals {
		if used := t.used>>idx&1 != 0; used != (val != nil) {
			return 0, fmt.Errorf("%w: terminal entry %d: bitmap says used=%v", ErrCorrupt, idx, used)
		}
		if val != nil {
			total++
		}
	}

	return total, nil
}
