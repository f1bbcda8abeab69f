package maputil

import "errors"

// Sentinel errors returned by copy, merge, and freeze operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := maputil.Freeze(m)
//	if errors.Is(err, maputil.ErrUnorderableKey) {
//	    // a key falls outside the orderable scalar kinds
//	}
var (
	// ErrDepthExceeded is returned by [DeepCopy] and [DeepMerge] when the
	// input nests more than [MaxDepth] container levels. Hitting this limit
	// almost always means the input contains a reference cycle, which this
	// package does not support.
	ErrDepthExceeded = errors.New("maputil: nesting depth exceeded (cyclic or pathologically deep input)")

	// ErrNotMapping is returned by [Freeze] and [SortedPairs] when the input
	// is not one of the recognised mapping forms (map[string]any or
	// map[any]any).
	ErrNotMapping = errors.New("maputil: value is not a mapping")

	// ErrUnorderableKey is returned by [Freeze] and [SortedPairs] when a key
	// falls outside the totally ordered scalar kinds (nil, bool, integers,
	// floats, strings), is a float NaN, or cannot be distinguished from
	// another key after canonicalisation. No fallback ordering is attempted.
	ErrUnorderableKey = errors.New("maputil: key cannot be totally ordered")

	// ErrUnhashableValue is returned by [Freeze] and [SortedPairs] when a
	// value falls outside the hashable scalar domain, and by [Set] operations
	// when an element is not a hashable scalar. Nested mappings, sequences,
	// and sets are unhashable; freeze nested mappings first.
	ErrUnhashableValue = errors.New("maputil: value is not hashable")
)
