package val

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Safe map access
//
// Get, GetPath, and Has read values out of nested map[string]any structures
// without panics. GetPath and Has address nested keys with dot-separated
// paths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "profile": map[string]any{"name": "Alice"},
//	    },
//	}
//
//	GetPath(m, "user.profile.name")           // → "Alice"
//	GetPath(m, "user.settings.theme", "dark") // → "dark"
//	Has(m, "user.profile")                    // → true
//
// All three are read-only: no function in this package ever writes to or
// restructures the maps it is given.
// ─────────────────────────────────────────────────────────────────────────────

// Get returns m[key], or def[0] (or nil) when the key is absent. A key that
// is present with a stored nil value yields nil, not the default.
//
//	Get(m, "name")               // value or nil
//	Get(m, "email", "not found") // value or "not found"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := m[key]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetPath retrieves a value from m using a dot-notation path, returning
// def[0] (or nil) when a segment is missing or an intermediate value is not
// itself a map[string]any. Like [Get], a stored nil value at the final
// segment is returned as-is.
//
//	GetPath(m, "user.profile.name")
//	GetPath(m, "user.missing", "default") // → "default"
func GetPath(m map[string]any, path string, def ...any) any {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		v, ok := current[seg]
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		if i == len(segments)-1 {
			return v
		}
		nested, ok := v.(map[string]any)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = nested
	}
	return nil
}

// Has reports whether the dot-notation path exists in m. A path ending on a
// stored nil value still exists; a path descending through a non-mapping
// value does not.
func Has(m map[string]any, path string) bool {
	return hasPath(m, strings.Split(path, "."))
}

func hasPath(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	v, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasPath(nested, segments[1:])
}
