package mtrie

import (
	"fmt"
	"io"
	"os"
)

// DebugDump prints the trie structure to stdout.
func (t *Trie[V]) DebugDump() {
	t.Fdump(os.Stdout)
}

// Fdump writes the trie structure to w, one slot per line.
func (t *Trie[V]) Fdump(w io.Writer) {
	fmt.Fprintf(w, "ROOT count=%d\n", t.Count())

	if t == nil {
		return
	}

	for idx := t.nextUsed(0); idx < rootFanout; idx = t.nextUsed(idx + 1) {
		t.slots[idx].dump(w, uint64(idx), fmt.Sprintf("[%02x]", idx), "  ")
	}
}

func (s *slot[V]) dump(w io.Writer, prefix uint64, tag string, indent string) {
	switch s.kind {
	case inlineSlot:
		fmt.Fprintf(w, "%s%s INLINE key=%#016x val=%p\n", indent, tag, s.key, s.val)
	case childSlot:
		fmt.Fprintf(w, "%s%s CHILD\n", indent, tag)
		s.child.dump(w, prefix, indent+"  ")
	}
}

func (n *node[V]) dump(w io.Writer, prefix uint64, indent string) {
	shift := shiftOf(int(n.depth))

	fmt.Fprintf(w, "%sNODE depth=%d used=%016b\n", indent, n.depth, n.used)

	for idx := range n.slots {
		n.slots[idx].dump(w, prefix|uint64(idx)<<shift, fmt.Sprintf("[%x]", idx), indent+"  ")
	}
}

func (t *terminal[V]) dump(w io.Writer, prefix uint64, indent string) {
	fmt.Fprintf(w, "%sTERMINAL used=%016b\n", indent, t.used)

	for idx, val := range t.vals {
		if val != nil {
			key := prefix | uint64(idx)<<terminalShift
			fmt.Fprintf(w, "%s  [%x] VALUE key=%#016x val=%p\n", indent, idx, key, val)
		}
	}
}
