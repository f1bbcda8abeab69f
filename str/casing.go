package str

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// slugRun matches every run of characters that cannot appear in a slug.
	slugRun = regexp.MustCompile(`[^a-z0-9]+`)

	// snakeAcronym splits an uppercase run from a following capitalised
	// word ("HTTPResponse" → "HTTP_Response"); snakeBoundary splits a
	// lower-to-upper transition ("getHTTP" → "get_HTTP").
	snakeAcronym  = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	snakeBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	// wordSep splits snake_case and kebab-case words.
	wordSep = regexp.MustCompile(`[-_]`)
)

// Slug converts s to a URL-safe slug: lower-cased, with every run of
// characters outside [a-z0-9] collapsed to a single hyphen and no leading
// or trailing hyphens.
//
//	Slug("Hello, World!")          // → "hello-world"
//	Slug("  Python 3.10 is GREAT") // → "python-3-10-is-great"
func Slug(s string) string {
	s = slugRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// Snake converts camelCase, PascalCase, kebab-case, or space-separated
// words to snake_case. Acronym runs stay together as one word.
//
//	Snake("HelloWorld")      // → "hello_world"
//	Snake("getHTTPResponse") // → "get_http_response"
func Snake(s string) string {
	s = snakeAcronym.ReplaceAllString(s, "${1}_${2}")
	s = snakeBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

// Camel converts snake_case or kebab-case to camelCase. Words after the
// first are capitalised with the remainder lower-cased, so acronyms
// flatten ("get_http_response" → "getHttpResponse"). Empty words from
// doubled separators are dropped.
//
//	Camel("hello_world")       // → "helloWorld"
//	Camel("get-http-response") // → "getHttpResponse"
func Camel(s string) string {
	words := wordSep.Split(s, -1)
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// capitalize upper-cases the first rune of w and lower-cases the rest.
// w must be non-empty.
func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
