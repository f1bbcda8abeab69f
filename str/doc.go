// Package str provides string normalization, truncation, casing, and
// formatting helpers for preparing text for display, URLs, logs, and
// templates.
//
// # Normalization
//
//	str.Clean("  Hello    World  ")        // → "Hello World"
//	str.RemovePunctuation("Hello, World!") // → "Hello World"
//	str.Chunks("abcdefgh", 3)              // → ["abc" "def" "gh"]
//
// # Truncation and masking
//
// [Truncate] counts runes; [TruncateWidth] counts terminal display cells,
// so East Asian wide characters take two:
//
//	str.Truncate("Hello World", 8)    // → "Hello..."
//	str.TruncateWidth("こんにちは", 7)  // → "こん..."
//	str.Mask("1234567890123456", 4)   // → "************3456"
//
// # Casing
//
//	str.Slug("Hello, World!")    // → "hello-world"
//	str.Snake("getHTTPResponse") // → "get_http_response"
//	str.Camel("hello_world")     // → "helloWorld"
//
// # Formatting
//
//	str.Currency(1234567.89)                                     // → "$1,234,567.89"
//	str.SafeFormat("Hi {name}", map[string]any{"name": "Alice"}) // → "Hi Alice"
//
// [SafeFormat] leaves unresolved placeholders literal instead of failing,
// so a partially-filled template can be formatted again later with the
// remaining values.
//
// # Degenerate arguments
//
// Every function in this package is total: out-of-range sizes, negative
// counts, and empty inputs degrade to a documented result (usually the
// empty string or an empty slice), never a panic or an error.
package str
