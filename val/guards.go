package val

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Nil-ness
// ─────────────────────────────────────────────────────────────────────────────

// IsNone reports whether v is nil: either the nil interface, or an
// interface holding a typed nil pointer, map, slice, channel, or function.
//
//	var p *int
//	IsNone(nil) // true
//	IsNone(p)   // true: p is a typed nil
//	IsNone(0)   // false
func IsNone(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNotNone reports whether v is not nil. See [IsNone].
func IsNotNone(v any) bool {
	return !IsNone(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Truthiness
// ─────────────────────────────────────────────────────────────────────────────

// IsTruthy reports whether v is truthy under dynamic-language boolean
// coercion. Falsy values are nil (including typed nils), false, numeric
// zero of any kind, the empty string, and empty containers; everything
// else (structs, non-zero numbers, non-empty text and containers) is
// truthy.
//
//	IsTruthy([]int{1}) // true
//	IsTruthy([]int{})  // false
//	IsTruthy(0)        // false
//	IsTruthy("false")  // true: non-empty string, content is irrelevant
func IsTruthy(v any) bool {
	if IsNone(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	default:
		return true
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Kind guards
// ─────────────────────────────────────────────────────────────────────────────

// IsNumeric reports whether v is an integer or floating-point number of any
// int, uint, or float kind, including defined types such as time.Duration.
// Booleans and complex numbers are not numeric.
//
//	IsNumeric(42)   // true
//	IsNumeric(3.14) // true
//	IsNumeric(true) // false
//	IsNumeric("42") // false: numeric content does not make a number
func IsNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsString reports whether v is a string, including defined string types.
func IsString(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// IsCollection reports whether v is a list-like container: a slice or an
// array of anything except bytes. Strings, maps, and byte slices/arrays
// are not collections.
//
//	IsCollection([]int{1, 2})         // true
//	IsCollection([2]string{"a", "b"}) // true
//	IsCollection("hello")             // false
//	IsCollection(map[string]any{})    // false
//	IsCollection([]byte("raw"))       // false
func IsCollection(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}
