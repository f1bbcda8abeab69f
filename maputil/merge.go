package maputil

// ─────────────────────────────────────────────────────────────────────────────
// Shallow composition
//
// OverrideCopy and FlatMerge are one-level operations: values cross into the
// result unchanged and shared, and on a key conflict the override (or later)
// value replaces the earlier one wholesale. Nothing is merged recursively.
// ─────────────────────────────────────────────────────────────────────────────

// OverrideCopy returns a shallow copy of base with every key from overrides
// written over it: existing keys are replaced, new keys inserted. Values
// are not copied, so nested containers in the result stay shared with the
// inputs.
//
// Neither input is mutated. Nil inputs are treated as empty; the result is
// always a new non-nil map.
//
//	dev := maputil.OverrideCopy(base, map[string]any{"debug": true, "port": 3000})
func OverrideCopy(base, overrides map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overrides {
		result[k] = v
	}
	return result
}

// FlatMerge merges mappings left to right into a single new map. Later
// mappings win on key conflict, and a conflicting value replaces the earlier
// one entirely; even when both values are themselves mappings, no recursion
// takes place. Use [DeepMerge] to merge nested structure.
//
// Values are shared, not copied. Nil mappings in the sequence are skipped;
// with no arguments the result is an empty map.
//
//	maputil.FlatMerge(
//	    map[string]any{"a": 1, "b": 2},
//	    map[string]any{"b": 99, "c": 3},
//	) // → {"a": 1, "b": 99, "c": 3}
func FlatMerge(mappings ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, m := range mappings {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Recursive merge
// ─────────────────────────────────────────────────────────────────────────────

// DeepMerge recursively merges override into a deep copy of base and returns
// the result. Per override key:
//
//   - when the existing and incoming values are mappings of the same
//     concrete form, they are merged key by key, recursively;
//   - otherwise the incoming value wins and replaces the existing one
//     wholesale, as an independently owned deep copy.
//
// Replacement, not error, is the policy for every conflict: scalar vs
// mapping, mapping vs sequence, and even map[string]any vs map[any]any.
// Sequences and sets are never merged element-wise. Neither input is
// mutated, and the result shares no mutable state with either.
//
// A reference cycle or nesting beyond [MaxDepth] in either input fails with
// [ErrDepthExceeded]. Nil inputs are treated as empty.
//
//	merged, _ := maputil.DeepMerge(
//	    map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}},
//	    map[string]any{"db": map[string]any{"port": 5433}},
//	) // → {"db": {"host": "localhost", "port": 5433}}
func DeepMerge(base, override map[string]any) (map[string]any, error) {
	return mergeMaps(base, override, 0)
}

// mergeMaps merges two same-form mappings at the given nesting depth. It is
// generic over the key type so the one implementation serves both
// map[string]any and nested map[any]any values.
func mergeMaps[K comparable](base, override map[K]any, depth int) (map[K]any, error) {
	if depth >= MaxDepth {
		return nil, errTooDeep()
	}
	result := make(map[K]any, len(base)+len(override))
	for k, v := range base {
		c, err := deepCopyValue(v, depth+1)
		if err != nil {
			return nil, err
		}
		result[k] = c
	}
	for k, v := range override {
		existing, ok := result[k]
		if !ok {
			c, err := deepCopyValue(v, depth+1)
			if err != nil {
				return nil, err
			}
			result[k] = c
			continue
		}
		merged, err := mergeValue(existing, v, depth+1)
		if err != nil {
			return nil, err
		}
		result[k] = merged
	}
	return result, nil
}

// mergeValue decides between recursion and replacement for one conflicting
// key. Only a same-form mapping pair recurses; everything else is replaced
// by a deep copy of the incoming value.
func mergeValue(existing, incoming any, depth int) (any, error) {
	switch ex := existing.(type) {
	case map[string]any:
		if in, ok := incoming.(map[string]any); ok {
			return mergeMaps(ex, in, depth)
		}
	case map[any]any:
		if in, ok := incoming.(map[any]any); ok {
			return mergeMaps(ex, in, depth)
		}
	}
	return deepCopyValue(incoming, depth)
}
