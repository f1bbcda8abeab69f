package maputil

import "fmt"

// MaxDepth is the maximum container nesting depth accepted by [DeepCopy] and
// [DeepMerge]. Inputs nesting deeper fail with [ErrDepthExceeded]. The limit
// exists to turn reference cycles, which would otherwise recurse forever,
// into an immediate, reportable error; 1000 levels is far beyond anything a
// decoded configuration document reaches.
const MaxDepth = 1000

// ─────────────────────────────────────────────────────────────────────────────
// Copy primitives
//
// ShallowCopy and DeepCopy establish the two independence depths everything
// else in this package is built on:
//
//	m := map[string]any{"a": 1, "tags": []any{"x"}}
//
//	s := ShallowCopy(m).(map[string]any)
//	s["a"] = 999                       // safe: m unaffected
//	s["tags"].([]any)[0] = "y"         // shared: m sees this write
//
//	d, _ := DeepCopy(m)
//	d.(map[string]any)["tags"].([]any)[0] = "y" // m untouched at any depth
// ─────────────────────────────────────────────────────────────────────────────

// ShallowCopy returns a new top-level container whose direct members are the
// same values as v's. Mutating the copy's own membership (adding, removing,
// or reassigning top-level entries) never affects v, but mutating a nested
// container reached through the copy affects both, since nested containers
// stay shared.
//
// Scalars are returned as-is, and a nil container in yields a nil container
// out. ShallowCopy never fails.
func ShallowCopy(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case map[any]any:
		if x == nil {
			return x
		}
		out := make(map[any]any, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		copy(out, x)
		return out
	case []string:
		if x == nil {
			return x
		}
		out := make([]string, len(x))
		copy(out, x)
		return out
	case Set:
		if x == nil {
			return x
		}
		out := make(Set, len(x))
		for val := range x {
			out[val] = struct{}{}
		}
		return out
	default:
		return x
	}
}

// DeepCopy rebuilds the whole container graph of v bottom-up and returns a
// value that shares no mutable node with v at any depth. Scalars pass
// through unchanged; they are immutable by convention, so sharing them is
// harmless.
//
// The input must be acyclic: a reference cycle (or nesting beyond
// [MaxDepth]) fails fast with [ErrDepthExceeded] and no partial result.
func DeepCopy(v any) (any, error) {
	return deepCopyValue(v, 0)
}

// errTooDeep builds the shared ErrDepthExceeded failure for the copy and
// merge recursions.
func errTooDeep() error {
	return fmt.Errorf("%w: more than %d levels", ErrDepthExceeded, MaxDepth)
}

// deepCopyValue is the recursive worker behind DeepCopy and DeepMerge.
// depth counts container levels from the root value; scalars never recurse,
// so only containers are held against the limit.
func deepCopyValue(v any, depth int) (any, error) {
	if KindOf(v) == KindScalar {
		return v, nil
	}
	if depth >= MaxDepth {
		return nil, errTooDeep()
	}
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return x, nil
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			c, err := deepCopyValue(val, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case map[any]any:
		if x == nil {
			return x, nil
		}
		// Keys are comparable by construction, hence scalar; only the
		// values need rebuilding.
		out := make(map[any]any, len(x))
		for k, val := range x {
			c, err := deepCopyValue(val, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case []any:
		if x == nil {
			return x, nil
		}
		out := make([]any, len(x))
		for i, val := range x {
			c, err := deepCopyValue(val, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case []string:
		if x == nil {
			return x, nil
		}
		out := make([]string, len(x))
		copy(out, x)
		return out, nil
	case Set:
		if x == nil {
			return x, nil
		}
		out := make(Set, len(x))
		for val := range x {
			out[val] = struct{}{}
		}
		return out, nil
	}
	return v, nil // unreachable: the switch covers every container kind
}
