package maputil

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Frozen forms
//
// Freeze projects a mapping onto a canonical ordered sequence of (key, value)
// pairs and materialises it as a FrozenMap, an immutable, comparable value
// that two equal mappings always produce identically, regardless of
// insertion order:
//
//	a, _ := Freeze(map[string]any{"a": 1, "b": 2})
//	b, _ := Freeze(map[string]any{"b": 2, "a": 1})
//	a == b                    // true
//	cache[a] = result         // usable as a map key
//
// The canonical form is a string encoding with a one-character class tag per
// scalar ("~" nil, "b:" bool, "i:" integer, "f:" float, "s:" quoted string,
// "{…}" nested frozen mapping), so distinct pair sets can never collide.
// ─────────────────────────────────────────────────────────────────────────────

// Pair is one (key, value) entry of a mapping's ordered projection, as
// produced by [SortedPairs].
type Pair struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// FrozenMap is the canonical, order-independent projection of a mapping,
// produced by [Freeze]. It is comparable (usable as a map key or [Set]
// member), and two FrozenMaps are equal exactly when the mappings they were
// frozen from hold the same key/value pairs.
//
// A FrozenMap classifies as a scalar: copies pass it through unchanged and
// [DeepMerge] replaces it wholesale like any other scalar value.
//
// The zero FrozenMap is the frozen form of no mapping at all; it compares
// unequal to every [Freeze] result, including the frozen empty mapping.
type FrozenMap struct {
	canon string
	n     int
}

// String returns the canonical encoding, e.g. `{s:"a":i:1,s:"b":i:2}`.
// The encoding is deterministic and collision-free, so it doubles as a
// stable identity for logging or comparison outside this package.
func (f FrozenMap) String() string { return f.canon }

// Len returns the number of key/value pairs in the frozen mapping.
func (f FrozenMap) Len() int { return f.n }

// Fingerprint returns the BLAKE2b-256 digest of the canonical encoding.
// Equal frozen maps always produce equal fingerprints, making them suitable
// as compact content-addressed cache keys:
//
//	sum := frozen.Fingerprint()
//	key := fmt.Sprintf("%x", sum[:8])
func (f FrozenMap) Fingerprint() [32]byte {
	return blake2b.Sum256([]byte(f.canon))
}

// Freeze converts a mapping into its [FrozenMap] form.
//
// The input must be map[string]any or map[any]any; anything else fails with
// [ErrNotMapping]. A nil map freezes as the empty mapping.
//
// Keys must be orderable scalars and are sorted by a total order: nil, then
// booleans (false before true), then numbers in ascending numeric order
// (integer families are compared by mathematical value, so int32(7) and
// uint64(7) rank and encode identically), then strings in lexicographic
// byte order. A key outside those kinds, a NaN key, or two keys that
// canonicalise identically (such as int(1) alongside uint(1)) fail with
// [ErrUnorderableKey].
//
// Values must be hashable scalars: nil, booleans, integers, floats, strings,
// or an already-frozen [FrozenMap]. Any other value, in particular a nested
// mapping, sequence, or set, fails with [ErrUnhashableValue] at Freeze time,
// never later at point of use; a returned FrozenMap is always valid as a map
// key. Callers wanting nested structure freeze it first, from the inside
// out, and use the inner FrozenMap as the value.
func Freeze(mapping any) (FrozenMap, error) {
	pairs, err := SortedPairs(mapping)
	if err != nil {
		return FrozenMap{}, err
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		appendCanon(&b, p.Key)
		b.WriteByte(':')
		appendCanon(&b, p.Value)
	}
	b.WriteByte('}')
	return FrozenMap{canon: b.String(), n: len(pairs)}, nil
}

// SortedPairs returns the ordered (key, value) projection behind [Freeze]:
// every entry of the mapping as a [Pair], sorted by key under the same total
// order, validated by the same rules, and failing with the same errors. Use
// it to iterate a mapping deterministically.
func SortedPairs(mapping any) ([]Pair, error) {
	var pairs []Pair
	switch m := mapping.(type) {
	case map[string]any:
		pairs = make([]Pair, 0, len(m))
		for k, v := range m {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	case map[any]any:
		pairs = make([]Pair, 0, len(m))
		for k, v := range m {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, mapping)
	}

	for _, p := range pairs {
		if err := checkOrderableKey(p.Key); err != nil {
			return nil, err
		}
		if err := checkFreezableValue(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return compareKeys(pairs[i].Key, pairs[j].Key) < 0
	})

	// Distinct interface values can share one canonical form (int(1) and
	// uint(1), say). Such keys tie under compareKeys, land adjacent, and
	// would break the frozen form's collision-freedom, so they are rejected.
	for i := 1; i < len(pairs); i++ {
		if compareKeys(pairs[i-1].Key, pairs[i].Key) == 0 {
			return nil, fmt.Errorf("%w: keys %#v and %#v canonicalise identically",
				ErrUnorderableKey, pairs[i-1].Key, pairs[i].Key)
		}
	}
	return pairs, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Key ordering
// ─────────────────────────────────────────────────────────────────────────────

// Class ranks for the key total order: nil < bool < number < string.
const (
	classNil = iota
	classBool
	classNumber
	classString
)

// keyClass returns the ordering class of a key, or ok=false for a key
// outside the orderable scalar kinds.
func keyClass(v any) (int, bool) {
	switch v.(type) {
	case nil:
		return classNil, true
	case bool:
		return classBool, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return classNumber, true
	case string:
		return classString, true
	default:
		return 0, false
	}
}

func checkOrderableKey(k any) error {
	class, ok := keyClass(k)
	if !ok {
		return fmt.Errorf("%w: key %#v (%T)", ErrUnorderableKey, k, k)
	}
	if class == classNumber {
		if f, isFloat := toFloat(k); isFloat && math.IsNaN(f) {
			return fmt.Errorf("%w: key NaN", ErrUnorderableKey)
		}
	}
	return nil
}

func checkFreezableValue(k, v any) error {
	switch v.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string, FrozenMap:
		return nil
	default:
		return fmt.Errorf("%w: value for key %v is %T", ErrUnhashableValue, k, v)
	}
}

// compareKeys implements the documented total order over orderable keys.
// Both arguments must already have passed checkOrderableKey. A zero result
// means the keys canonicalise identically.
func compareKeys(a, b any) int {
	ca, _ := keyClass(a)
	cb, _ := keyClass(b)
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	}
	switch ca {
	case classNil:
		return 0
	case classBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case !ab && bb:
			return -1
		case ab && !bb:
			return 1
		}
		return 0
	case classNumber:
		if c := compareNumber(a, b); c != 0 {
			return c
		}
		// Numerically tied values of different representations (int vs
		// uint vs float) fall back to the canonical encoding, which keeps
		// the order total and deterministic.
		return strings.Compare(canonScalar(a), canonScalar(b))
	default:
		return strings.Compare(a.(string), b.(string))
	}
}

// compareNumber orders two numeric keys by mathematical value, exactly for
// integer pairs and via float64 for anything involving a float.
func compareNumber(a, b any) int {
	ai, aIsInt := toInt(a)
	bi, bIsInt := toInt(b)
	if aIsInt && bIsInt {
		switch {
		case ai.neg != bi.neg:
			if ai.neg {
				return -1
			}
			return 1
		case ai.neg: // both negative: larger magnitude is smaller
			return compareUint(bi.mag, ai.mag)
		default:
			return compareUint(ai.mag, bi.mag)
		}
	}
	var af, bf float64
	if aIsInt {
		af = intAsFloat(ai)
	} else {
		af = mustFloat(a)
	}
	if bIsInt {
		bf = intAsFloat(bi)
	} else {
		bf = mustFloat(b)
	}
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

// intVal is a sign/magnitude view of an integer key, wide enough for every
// int and uint family value.
type intVal struct {
	neg bool
	mag uint64
}

func toInt(v any) (intVal, bool) {
	switch x := v.(type) {
	case int:
		return signedVal(int64(x)), true
	case int8:
		return signedVal(int64(x)), true
	case int16:
		return signedVal(int64(x)), true
	case int32:
		return signedVal(int64(x)), true
	case int64:
		return signedVal(x), true
	case uint:
		return intVal{mag: uint64(x)}, true
	case uint8:
		return intVal{mag: uint64(x)}, true
	case uint16:
		return intVal{mag: uint64(x)}, true
	case uint32:
		return intVal{mag: uint64(x)}, true
	case uint64:
		return intVal{mag: x}, true
	}
	return intVal{}, false
}

func signedVal(v int64) intVal {
	if v < 0 {
		// Negate via uint64 arithmetic so math.MinInt64 survives.
		return intVal{neg: true, mag: -uint64(v)}
	}
	return intVal{mag: uint64(v)}
}

func intAsFloat(v intVal) float64 {
	if v.neg {
		return -float64(v.mag)
	}
	return float64(v.mag)
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// toFloat reports whether v is a float key and returns its float64 value.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func mustFloat(v any) float64 {
	f, _ := toFloat(v)
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Canonical encoding
// ─────────────────────────────────────────────────────────────────────────────

// appendCanon writes the canonical encoding of a validated hashable scalar.
// Strings are quoted, so the separator characters can never be forged from
// inside a value, and integer families are normalised to their mathematical
// value.
func appendCanon(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteByte('~')
	case bool:
		if x {
			b.WriteString("b:true")
		} else {
			b.WriteString("b:false")
		}
	case string:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(x))
	case FrozenMap:
		b.WriteString(x.canon)
	case float32:
		appendCanonFloat(b, float64(x))
	case float64:
		appendCanonFloat(b, x)
	default:
		iv, ok := toInt(v)
		if !ok {
			// Unreachable after validation.
			fmt.Fprintf(b, "?%T", v)
			return
		}
		b.WriteString("i:")
		if iv.neg {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatUint(iv.mag, 10))
	}
}

func appendCanonFloat(b *strings.Builder, v float64) {
	if v == 0 {
		v = 0 // -0 and +0 are the same map key; encode both as 0
	}
	b.WriteString("f:")
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

// canonScalar returns the canonical encoding of a single scalar, used for
// ordering tie-breaks.
func canonScalar(v any) string {
	var b strings.Builder
	appendCanon(&b, v)
	return b.String()
}
