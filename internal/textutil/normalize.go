package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// TitleCase restores display casing for titles that arrived entirely
// lowercase ("the.matrix" releases). Text that already carries any
// uppercase is trusted as-is. Casers are stateful, so one is built
// per call.
func TitleCase(text string) string {
	if text == "" || strings.ToLower(text) != text {
		return text
	}
	return cases.Title(xlanguage.Und).String(text)
}

// Normalize lowers a title onto its comparable form: lowercase,
// punctuation mapped to spaces, whitespace collapsed. CJK characters
// pass through unchanged so native-script titles keep their identity.
func Normalize(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits a normalized title into its words.
func Words(title string) []string {
	return strings.Fields(Normalize(title))
}

// ContainsWordwise reports whether every word of needle appears in
// haystack, in order. It is the looser containment check used when an
// exact title match fails.
func ContainsWordwise(haystack, needle string) bool {
	h := Normalize(haystack)
	n := Normalize(needle)
	if n == "" || h == "" {
		return false
	}
	return strings.Contains(" "+h+" ", " "+n+" ") || strings.Contains(h, n)
}
