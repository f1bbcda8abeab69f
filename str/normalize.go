package str

import (
	"regexp"
	"strings"
)

// punctuation is any rune that is not a letter, digit, underscore, or
// whitespace.
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Clean trims s and collapses every whitespace run (spaces, tabs,
// newlines) to a single space.
//
//	Clean("  Hello    World  ") // → "Hello World"
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeWhitespace normalizes all whitespace in s to single spaces.
// It is [Clean] under a more explicit name.
//
//	NormalizeWhitespace("Hello\n\tWorld") // → "Hello World"
func NormalizeWhitespace(s string) string {
	return Clean(s)
}

// RemovePunctuation removes every rune that is not a letter, digit,
// underscore, or whitespace. Letters and digits from any script are kept.
//
//	RemovePunctuation("Hello, World!") // → "Hello World"
func RemovePunctuation(s string) string {
	return punctuation.ReplaceAllString(s, "")
}

// Chunks splits s into consecutive rune chunks of the given size. The last
// chunk may be shorter. A size of zero or less yields an empty slice.
//
//	Chunks("abcdefgh", 3) // → ["abc" "def" "gh"]
func Chunks(s string, size int) []string {
	if size <= 0 {
		return []string{}
	}
	runes := []rune(s)
	out := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}
