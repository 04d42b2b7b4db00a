package models

import (
	"strings"
	"unicode"
)

// Slugify turns a display name into a URL slug: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen.
// "Rust Lang" -> "rust-lang"
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
