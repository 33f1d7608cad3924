package main

import (
	"fmt"

	"github.com/aglyzov/go-mtrie/mtrie"
)

func main() {
	var (
		names = []string{"zero", "one", "two-fifty-six", "two-to-the-52"}
		keys  = []uint64{0, 1, 0x100, 0x10_0000_0000_0000}
		tr    = mtrie.New[string]()
	)

	for i, key := range keys {
		tr.Insert(key, &names[i])
	}

	tr.DebugDump()

	println("------")

	// canonical order: the root digit is the low byte of a key
	for it := tr.Iterate(); it.More(); it.Advance() {
		fmt.Printf("%#016x  path=%#016x  %s\n", it.Key(), mtrie.Path(it.Key()), *it.Value())
	}

	println("------")

	tr.Remove(0x10_0000_0000_0000)

	fmt.Printf("count=%d  stats=%+v\n", tr.Count(), tr.Stats())

	if err := tr.Check(); err != nil {
		fmt.Println(err)
	}
}
