package str

import (
	"fmt"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	email = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// placeholder matches {name} template variables: a letter or
	// underscore followed by letters, digits, or underscores.
	placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

	// grouping formats numbers with English thousands separators.
	// Printers are safe for concurrent use.
	grouping = message.NewPrinter(language.English)
)

// Currency formats amount as a dollar value with thousands separators and
// two decimal places.
//
//	Currency(1234567.89) // → "$1,234,567.89"
func Currency(amount float64) string {
	return CurrencyWith(amount, "$", 2)
}

// CurrencyWith formats amount with the given currency symbol and number of
// decimal places, grouping thousands with commas. Negative decimals are
// treated as zero.
//
//	CurrencyWith(1234.5, "€", 2) // → "€1,234.50"
func CurrencyWith(amount float64, symbol string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return symbol + grouping.Sprint(number.Decimal(amount,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

// SafeFormat substitutes {name} placeholders in template with values from
// vars, formatting each value as fmt.Sprint would. Placeholders with no
// matching key stay literal, so the returned string can be formatted again
// once the missing values are known.
//
//	SafeFormat("Hello {name}, you have {count} messages",
//	    map[string]any{"name": "Alice"})
//	// → "Hello Alice, you have {count} messages"
func SafeFormat(template string, vars map[string]any) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := vars[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// ExtractEmails returns every email address found in s, in order of
// appearance, or nil when there are none.
//
//	ExtractEmails("Contact alice@example.com or bob@test.org")
//	// → ["alice@example.com" "bob@test.org"]
func ExtractEmails(s string) []string {
	return email.FindAllString(s, -1)
}
