package riot

import (
	"net/url"
	"strings"
	"unicode"
)

// NormalizeName folds a summoner name for comparison: percent-decoded,
// lower-cased, whitespace removed.
func NormalizeName(name string) string {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// SameName reports whether two summoner names match case- and
// space-insensitively
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
