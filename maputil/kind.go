package maputil

// Kind is the closed variant tag for structured values. Every value belongs
// to exactly one kind; copy and merge decisions are made by comparing tags,
// never by probing capabilities at runtime.
type Kind uint8

const (
	// KindScalar covers every value that is not a recognised container:
	// nil, booleans, numbers, strings, [FrozenMap], and any unrecognised
	// dynamic type. Scalars are immutable by convention and are never
	// rebuilt by a copy.
	KindScalar Kind = iota

	// KindSequence covers []any and []string, the ordered container forms
	// produced by JSON/YAML decoding.
	KindSequence

	// KindMapping covers map[string]any (the canonical decode form) and
	// map[any]any (the legacy YAML decode form).
	KindMapping

	// KindSet covers [Set].
	KindSet
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindSet:
		return "set"
	default:
		return "unknown"
	}
}

// KindOf classifies v into its structured-value kind.
//
// The set of recognised container forms is closed: map[string]any,
// map[any]any, []any, []string, and [Set]. Anything else, including other
// map and slice types such as map[string]string or []int, is an opaque
// scalar and crosses every copy by value.
func KindOf(v any) Kind {
	switch v.(type) {
	case map[string]any, map[any]any:
		return KindMapping
	case []any, []string:
		return KindSequence
	case Set:
		return KindSet
	default:
		return KindScalar
	}
}
