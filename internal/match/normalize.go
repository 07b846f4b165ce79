package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey produces the canonical form used for index lookups and
// equality keys: trimmed and upper-cased. It is never used for similarity
// scoring of display output.
func NormalizeKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// stripMarks removes combining marks after NFD decomposition, turning
// "José" into "Jose". Recomposing with NFC keeps the output in canonical
// form so the transform is idempotent.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTolerant produces the comparison form used for tolerant name
// matching: diacritics are stripped, the punctuation characters space,
// hyphen, period, comma, and semicolon are removed, and the result is
// upper-cased. ASCII input passes through unchanged apart from case and the
// listed punctuation.
func NormalizeTolerant(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to the
		// raw input rather than dropping the name.
		stripped = name
	}
	stripped = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', ',', ';':
			return -1
		}
		return r
	}, stripped)
	return strings.ToUpper(stripped)
}
