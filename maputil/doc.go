// Package maputil provides safe copying, merging, and canonical freezing of
// nested map structures, built to prevent the aliasing bugs that creep in
// when map[string]any values decoded from JSON or YAML are shared, layered,
// and mutated.
//
// # Structured values
//
// Every value handled by this package is classified into exactly one of four
// kinds (see [KindOf]):
//
//   - Mapping:  map[string]any and map[any]any
//   - Sequence: []any and []string
//   - Set:      [Set] (unordered unique scalars)
//   - Scalar:   everything else, including nil
//
// Scalars are treated as immutable and pass through every copy unchanged;
// only containers are rebuilt. Unrecognised container types ([]int, custom
// structs, …) are opaque scalars by convention: they cross copies by value,
// exactly like a string or a time.Time.
//
// # Copy depth
//
// [ShallowCopy] rebuilds only the top-level container; nested containers stay
// shared with the source. [DeepCopy] rebuilds the whole container graph, so
// the result shares no mutable node with the source at any depth:
//
//	cfg := map[string]any{"db": map[string]any{"host": "localhost"}}
//
//	s := maputil.ShallowCopy(cfg).(map[string]any)
//	s["db"].(map[string]any)["host"] = "10.0.0.1" // cfg sees this write
//
//	d, _ := maputil.DeepCopy(cfg)
//	d.(map[string]any)["db"].(map[string]any)["host"] = "10.0.0.1" // cfg untouched
//
// # Merge precedence
//
// [OverrideCopy] and [FlatMerge] are one-level compositions: on a key
// conflict the override (or later) mapping wins, and its value replaces the
// earlier one wholesale. [DeepMerge] recurses into values that are mappings
// on both sides and merges them key by key; every other conflict (scalar vs
// scalar, mapping vs sequence, mapping vs set) is resolved by replacement,
// never by error. Sequences and sets are always replaced, never merged
// element-wise.
//
// DeepMerge never mutates its inputs and its result shares no mutable state
// with either of them, so layering configuration is safe:
//
//	merged, _ := maputil.DeepMerge(defaults, overrides)
//
// # Frozen forms
//
// [Freeze] projects a mapping onto a [FrozenMap]: a canonical,
// order-independent, comparable value usable as a map key or [Set] member.
// Two mappings with the same key/value pairs freeze equal no matter the
// insertion order. Keys must be orderable scalars and values must be
// hashable scalars or already-frozen maps; nothing is frozen recursively, so
// callers freeze nested mappings first, from the inside out.
//
// # Limits
//
// Input graphs must be acyclic. [DeepCopy] and [DeepMerge] guard against
// cycles and pathological nesting with a depth counter and fail fast with
// [ErrDepthExceeded] once [MaxDepth] levels are exceeded, instead of
// overflowing the stack.
//
// # Portability
//
// The operations map 1-to-1 to common dynamic-language idioms: ShallowCopy
// and DeepCopy to Python's copy.copy/copy.deepcopy, FlatMerge to dict
// unpacking ({**a, **b}), and Freeze to tuple(sorted(d.items())). See the
// repository README for porting notes.
package maputil
