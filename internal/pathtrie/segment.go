package pathtrie

import (
	"iter"
	"strings"
)

// Segment is one sub-key of a path key, together with the full key up to and
// including it. Both fields are slices into the original key string.
type Segment struct {
	Sub  string
	Full string
}

// Segments splits a path key into its trie segments. Keys use dot and bracket
// notation mirroring object/array nesting: "Person.Address[0].Street" yields
// "Person", "Address[0]", "Street".
//
// The grammar is deliberately forgiving about malformed tails:
//   - a '.' always ends the current segment at that position;
//   - a '[' is scanned forward to its ']'. A missing ']', a ']' at
//     end-of-string, or a ']' followed by anything other than '.' all consume
//     the remainder of the key as a single final segment;
//   - "]." places the boundary after the dot, so "Addresses[0].Street" is
//     "Addresses[0]" + "Street", never "Addresses" + "[0]" + "Street".
//
// The empty key yields no segments; callers map it to the root directly.
func Segments(key string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for start := 0; start < len(key); {
			end, next := scanSegment(key, start)
			if !yield(Segment{Sub: key[start:end], Full: key[:end]}) {
				return
			}
			start = next
		}
	}
}

// scanSegment finds the end of the segment beginning at start and the
// position where the following segment begins. next == len(key) means the
// segment was the last one.
func scanSegment(key string, start int) (end, next int) {
	for i := start; i < len(key); i++ {
		switch key[i] {
		case '.':
			return i, i + 1
		case '[':
			off := strings.IndexByte(key[i:], ']')
			if off < 0 {
				// no closing bracket: the rest is one segment
				return len(key), len(key)
			}
			c := i + off
			if c == len(key)-1 {
				// "Cars[17]" stays whole
				return len(key), len(key)
			}
			if key[c+1] == '.' {
				return c + 1, c + 2
			}
			// "]" followed by junk: do not split the tail further
			return len(key), len(key)
		}
	}
	return len(key), len(key)
}
