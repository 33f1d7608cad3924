package mtrie

import (
	"fmt"
	"io"
)

type slotKind uint8

const (
	emptySlot  slotKind = iota // no key below the slot
	inlineSlot                 // a single key stored in place
	childSlot                  // an owned node holding two or more keys
)

// branch is a node one level below a slot: an internal node or a terminal node.
type branch[V any] interface {
	insert(key, path uint64, val *V, count *uint64)
	remove(key, path uint64, count *uint64)
	find(key, path uint64) *V

	// next returns the first entry at or after bound in canonical order; prefix holds
	// the key bits fixed by the levels above, tight tells whether they equal bound's.
	next(prefix, bound uint64, tight bool) (uint64, *V)
	each(prefix uint64, fn func(uint64, *V) bool) bool

	// empty reports whether no key is left below the node.
	empty() bool
	// lone returns the only entry left below the node if it can be inlined; sample is
	// any key routed to this node.
	lone(sample uint64) (uint64, *V, bool)

	census(stats *Stats)
	check(prefix uint64) (uint64, error)
	dump(w io.Writer, prefix uint64, indent string)
}

// slot holds either nothing, an inline key-value pair or an owned child node.
type slot[V any] struct {
	kind  slotKind
	key   uint64
	val   *V
	child branch[V]
}

func newBranch[V any](depth int) branch[V] {
	if depth == terminalDepth {
		return &terminal[V]{}
	}
	return &node[V]{depth: uint8(depth)}
}

func (s *slot[V]) String() string {
	switch s.kind {
	case inlineSlot:
		return fmt.Sprintf("<Slot INLINE key=%#016x, val=%p>", s.key, s.val)
	case childSlot:
		return fmt.Sprintf("<Slot CHILD %T>", s.child)
	default:
		return "<Slot EMPTY>"
	}
}

// insert puts a key below the slot; path is the key shifted down to the digit of a
// child at the given depth.
func (s *slot[V]) insert(key, path uint64, depth int, val *V, count *uint64) {
	switch s.kind {
	case emptySlot:
		*s = slot[V]{kind: inlineSlot, key: key, val: val}
		*count++

	case inlineSlot:
		if s.key == key {
			s.val = val
			return
		}

		// explode the inline entry into a child holding both keys
		child := newBranch[V](depth)
		child.insert(s.key, s.key>>shiftOf(depth), s.val, count)
		child.insert(key, path, val, count)
		*count-- // the inline entry is now counted by the child

		*s = slot[V]{kind: childSlot, child: child}

	case childSlot:
		s.child.insert(key, path, val, count)
	}
}

// remove deletes a key below the slot and reports whether the slot became empty.
//
// A child left with a single key is folded back into an inline entry.
func (s *slot[V]) remove(key, path uint64, count *uint64) bool {
	switch s.kind {
	case inlineSlot:
		if s.key != key {
			return false
		}
		*s = slot[V]{}
		*count--
		return true

	case childSlot:
		s.child.remove(key, path, count)

		if s.child.empty() {
			*s = slot[V]{}
			return true
		}
		if k, v, ok := s.child.lone(key); ok {
			*s = slot[V]{kind: inlineSlot, key: k, val: v}
		}
	}

	return false
}

func (s *slot[V]) find(key, path uint64) *V {
	switch s.kind {
	case inlineSlot:
		if s.key == key {
			return s.val
		}
	case childSlot:
		return s.child.find(key, path)
	}
	return nil
}

func (s *slot[V]) next(prefix, bound uint64, tight bool) (uint64, *V) {
	switch s.kind {
	case inlineSlot:
		if !tight || Path(s.key) >= Path(bound) {
			return s.key, s.val
		}
	case childSlot:
		return s.child.next(prefix, bound, tight)
	}
	return 0, nil
}

func (s *slot[V]) each(prefix uint64, fn func(uint64, *V) bool) bool {
	switch s.kind {
	case inlineSlot:
		return fn(s.key, s.val)
	case childSlot:
		return s.child.each(prefix, fn)
	}
	return true
}
