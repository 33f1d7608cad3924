package mtrie

import (
	"sort"

	"github.com/brianvoe/gofakeit/v6"
)

const seed = 1234567890

// lessDigits compares two keys digit by digit, root digit first.
func lessDigits(a, b uint64) bool {
	da, db := Digits(a), Digits(b)

	for i := range da {
		if da[i] != db[i] {
			return da[i] < db[i]
		}
	}
	return false
}

// canonicalKeys returns the keys of a reference map in canonical order.
func canonicalKeys[V any](state map[uint64]*V) []uint64 {
	keys := make([]uint64, 0, len(state))
	for key := range state {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return lessDigits(keys[i], keys[j])
	})

	return keys
}

// keyGen produces keys that often share long digit prefixes, so that inline entries
// get exploded down to the terminal level and folded back on removal.
type keyGen struct {
	faker *gofakeit.Faker
	bases []uint64
}

func newKeyGen(seed int64, numBases int) *keyGen {
	gen := &keyGen{faker: gofakeit.New(seed)}

	for i := 0; i < numBases; i++ {
		gen.bases = append(gen.bases, gen.faker.Uint64())
	}

	return gen
}

func (gen *keyGen) Key() uint64 {
	var (
		base = gen.bases[gen.faker.Number(0, len(gen.bases)-1)]
		top  = uint(gen.faker.Number(0, 63)) // randomize the bits from top up
	)

	switch gen.faker.Number(0, 3) {
	case 0:
		return gen.faker.Uint64()
	case 1:
		// differ in the terminal digit only
		return base&^(nibbleMask<<terminalShift) | uint64(gen.faker.Number(0, 15))<<terminalShift
	default:
		return base&(uint64(1)<<top-1) | gen.faker.Uint64()<<top
	}
}

func getKeys(total int) []uint64 {
	var (
		faker = gofakeit.New(seed)
		keys  = make([]uint64, total)
	)

	for i := range keys {
		keys[i] = faker.Uint64()
	}

	return keys
}
