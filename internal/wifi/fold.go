package wifi

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldKey lowercases s and strips diacritics, so "Álvaro Obregón" and
// "alvaro obregon" compare equal in substring searches. The chain is built
// per call; transformers carry state and are not goroutine-safe.
func FoldKey(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
