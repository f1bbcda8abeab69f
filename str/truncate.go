package str

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most max runes, appending suffix (default
// "...") when anything was cut. The suffix counts toward the limit, so the
// result never exceeds max runes; when max is too small to fit the suffix,
// the result is the suffix itself truncated to max. A max of zero or less
// yields the empty string.
//
//	Truncate("Hello World", 8) // → "Hello..."
//	Truncate("Hi", 10)         // → "Hi"
//	Truncate("Hello", 2)       // → ".."
func Truncate(s string, max int, suffix ...string) string {
	sfx := "..."
	if len(suffix) > 0 {
		sfx = suffix[0]
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	sfxRunes := []rune(sfx)
	if max <= len(sfxRunes) {
		return string(sfxRunes[:max])
	}
	return string(runes[:max-len(sfxRunes)]) + sfx
}

// TruncateWidth shortens s to at most maxWidth terminal display cells,
// appending suffix (default "...") when anything was cut. East Asian wide
// characters count as two cells, so the cut lands on a cell boundary
// rather than splitting a wide rune. When maxWidth is positive but smaller
// than the suffix's own width, the result degrades to the bare suffix; a
// maxWidth of zero or less yields the empty string.
//
//	TruncateWidth("こんにちは", 7) // → "こん..."
func TruncateWidth(s string, maxWidth int, suffix ...string) string {
	sfx := "..."
	if len(suffix) > 0 {
		sfx = suffix[0]
	}
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, sfx)
}

// Mask replaces all but the last visible runes of s with asterisks.
// Inputs no longer than visible (and any input when visible is zero or
// less) are masked entirely, so short secrets never leak whole.
//
//	Mask("1234567890123456", 4) // → "************3456"
//	Mask("key", 4)              // → "***"
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
