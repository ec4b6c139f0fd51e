// Package slug normalizes city names and page titles into URL-friendly keys.
// Two titles that normalize to the same slug are considered duplicates.
package slug

import (
	"strings"
	"unicode"
)

// Make converts text to a lowercase hyphenated slug.
// "Silicon Valley" -> "silicon-valley", "Neon District!" -> "neon-district".
func Make(text string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// everything else is dropped
	}
	return strings.TrimRight(b.String(), "-")
}
