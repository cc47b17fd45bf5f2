package match

import (
	"strings"
	"unicode"
)

// Normalize prepares a name for fuzzy comparison: it lower-cases the input
// and drops separators and spaces, keeping letters, digits and the
// structural characters of type strings (':', '<', '>', '/').
//
//	"Data:Text<Text/CSV>"   -> "data:text<text/csv>"
//	"string < application-json >" -> "string<applicationjson>"
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ':', r == '<', r == '>', r == '/':
			b.WriteRune(r)
		}
	}

	return b.String()
}
