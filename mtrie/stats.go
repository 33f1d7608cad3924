package mtrie

import (
	"unsafe"

	"github.com/hideo55/go-popcount"
)

// Stats is a census of the trie nodes.
type Stats struct {
	Keys            uint64
	RootSlots       uint64 // non-empty root slots
	InlineEntries   uint64 // keys stored in place at any level
	InternalNodes   uint64
	InternalSlots   uint64 // non-empty slots of internal nodes
	TerminalNodes   uint64
	TerminalEntries uint64
	Bytes           uint64 // approximate memory held by the root and all nodes
}

// Stats walks the trie and counts its nodes and entries.
func (t *Trie[V]) Stats() Stats {
	var stats Stats

	if t == nil {
		return stats
	}

	stats.Keys = t.count
	stats.RootSlots = popcount.CountSlice(t.used[:])
	stats.Bytes = uint64(unsafe.Sizeof(*t))

	for idx := t.nextUsed(0); idx < rootFanout; idx = t.nextUsed(idx + 1) {
		t.slots[idx].census(&stats)
	}

	return stats
}

func (s *slot[V]) census(stats *Stats) {
	switch s.kind {
	case inlineSlot:
		stats.InlineEntries++
	case childSlot:
		s.child.census(stats)
	}
}

func (n *node[V]) census(stats *Stats) {
	stats.InternalNodes++
	stats.InternalSlots += popcount.Count(uint64(n.used))
	stats.Bytes += uint64(unsafe.Sizeof(*n))

	for i := range n.slots {
		n.slots[i].census(stats)
	}
}

func (t *terminal[V]) census(stats *Stats) {
	stats.TerminalNodes++
	stats.TerminalEntries += popcount.Count(uint64(t.used))
	stats.Bytes += uint64(unsafe.Sizeof(*t))
}
