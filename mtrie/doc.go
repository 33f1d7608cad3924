// Package mtrie defines a memory-efficient map from uint64 keys to pointer values,
// implemented as a fixed-depth compressed radix trie.
//
// A key is consumed as a path of 15 digits:
// ----------------------------------------
//
//   - digit 0      - bits [ 0.. 7] (radix 256), selects a root slot;
//   - digits 1..13 - bits [ 8..59] (radix 16, one nibble each), select a slot in an
//     internal node of depth 0..12;
//   - digit 14     - bits [60..63] (radix 16), selects a value in a terminal node.
//
// The root selects on the least significant byte and every following level on the next
// more significant nibble. So the natural traversal order of the trie (canonical order)
// is NOT the numeric order of keys. See Path for a packed form of a key whose numeric
// order is the canonical order.
//
// Slot variants:
// -------------
//
//   - Empty:   no key below the slot;
//   - Inline:  exactly one key below the slot, stored in place (key, value);
//   - Child:   an owned node of the next depth holding two or more keys.
//
// A terminal node is a flat array of 16 values: reaching it fixes all 64 bits of a key,
// so no two keys can collide there.
//
// Example trie:
// ------------
//
//	[root]--+-- [00] Inline:0x0000000000000000
//	        |
//	        +-- [01] Child --- [d0] --+-- [0] Inline:0x0000000000000001
//	        |                         |
//	        |                         `-- [3] Inline:0x0000000000000301
//	        |
//	        `-- [ff] Inline:0x12340000000000ff
//
// A nil value is the absence sentinel: Find returns nil for a missing key and inserting
// nil removes the key.
//
// A Trie is not safe for concurrent use.
package mtrie
