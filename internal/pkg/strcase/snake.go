// Package strcase converts identifier casing.
package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts CamelCase or mixedCase identifiers to snake_case.
// Runs of capitals are treated as acronyms: "HTTPServer" becomes
// "http_server", "userID" becomes "user_id".
func ToLowerSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && boundary(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// boundary reports whether a word break belongs before runes[i].
func boundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// Last capital of an acronym followed by a lowercase word.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
