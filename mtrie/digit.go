package mtrie

const (
	rootWidth   = 8 // bits consumed by the root
	nibbleWidth = 4 // bits consumed by every other level

	rootFanout = 1 << rootWidth   // 256
	fanout     = 1 << nibbleWidth // 16

	rootMask   uint64 = rootFanout - 1 // 0b_1111_1111
	nibbleMask uint64 = fanout - 1     // 0b_1111

	// terminalDepth is the depth of the terminal nodes; internal nodes live at
	// depths [0..terminalDepth-1].
	terminalDepth = 13

	// pathDigits is the total number of digits in a path: the root digit, one per
	// internal depth and the terminal one.
	pathDigits = 1 + terminalDepth + 1

	// MaxPath is the last path in canonical order.
	MaxPath = ^uint64(0)
)

// shiftOf returns the bit offset of the digit consumed by a node at the given depth.
func shiftOf(depth int) uint {
	return rootWidth + nibbleWidth*uint(depth)
}

// digitAt returns the digit of a key consumed by a node at the given depth.
func digitAt(key uint64, depth int) int {
	return int(key >> shiftOf(depth) & nibbleMask)
}

// lowBits keeps the bits of a key consumed above a node of the given depth.
func lowBits(key uint64, depth int) uint64 {
	return key & (uint64(1)<<shiftOf(depth) - 1)
}

// Path packs the digits of a key most significant first: the root digit takes bits
// [56..63], digit 1 takes [52..55] and so on down to digit 14 in [0..3].
//
// Comparing paths numerically compares keys in canonical order.
func Path(key uint64) uint64 {
	path := (key & rootMask) << (64 - rootWidth)
	key >>= rootWidth

	for shift := 64 - rootWidth - nibbleWidth; shift >= 0; shift -= nibbleWidth {
		path |= (key & nibbleMask) << shift
		key >>= nibbleWidth
	}

	return path
}

// KeyOf is the inverse of Path.
func KeyOf(path uint64) uint64 {
	var (
		key   = path >> (64 - rootWidth)
		place = uint(rootWidth)
	)

	for shift := 64 - rootWidth - nibbleWidth; shift >= 0; shift -= nibbleWidth {
		key |= (path >> shift & nibbleMask) << place
		place += nibbleWidth
	}

	return key
}

// Digits returns the path digits of a key in canonical order.
func Digits(key uint64) [pathDigits]uint8 {
	var digits [pathDigits]uint8

	digits[0] = uint8(key & rootMask)

	for depth := 0; depth <= terminalDepth; depth++ {
		digits[depth+1] = uint8(digitAt(key, depth))
	}

	return digits
}
