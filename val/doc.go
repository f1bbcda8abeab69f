// Package val provides type-guard predicates for dynamically-typed values
// and safe lookups into nested map[string]any structures.
//
// # Type guards
//
// The predicates classify interface values the way a dynamic language
// would, and are total: any value in, true or false out, never a panic or
// an error.
//
//	val.IsNone(nil)               // → true
//	val.IsTruthy([]int{})         // → false
//	val.IsNumeric(3.14)           // → true
//	val.IsCollection([]int{1, 2}) // → true
//
// Guards match on reflect.Kind, so defined types participate: a
// "type Port int" is numeric and a "type Name string" is a string.
//
// # The typed-nil trap
//
// An interface holding a typed nil pointer does not compare equal to nil:
//
//	var p *User
//	var v any = p
//	v == nil      // false, the classic surprise
//	val.IsNone(v) // true
//
// [IsNone] reports nil-ness the way callers usually mean it: true for the
// nil interface and for any nil pointer, map, slice, channel, or function
// held inside one.
//
// # Safe access
//
// [Get], [GetPath], and [Has] read nested map[string]any values (the shape
// produced by decoding JSON or YAML into any) without panics and without a
// presence check at every level:
//
//	m := map[string]any{
//	    "user": map[string]any{"profile": map[string]any{"name": "Alice"}},
//	}
//	val.GetPath(m, "user.profile.name")           // → "Alice"
//	val.GetPath(m, "user.settings.theme", "dark") // → "dark"
//	val.Has(m, "user.profile")                    // → true
//
// A missing key or a non-mapping intermediate yields the optional default
// (or nil); a key present with a stored nil value yields that nil, not the
// default.
package val
