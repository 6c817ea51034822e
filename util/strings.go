package util

import (
	"strings"
	"unicode"
)

// Capitalize upper-cases the first rune and lower-cases the rest
// ("hElLo" → "Hello"). Empty strings pass through.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
