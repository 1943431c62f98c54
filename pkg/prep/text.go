package prep

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower lower-cases s with full Unicode case mapping.
// A Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSeparator matches unicode.IsSpace plus the ASCII information
// separators U+001C..U+001F.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Tokenize lower-cases text and returns its ASCII alphanumeric words in
// order. Words are maximal runs of letters, digits and underscores; a run is
// kept only if it consists entirely of ASCII letters and digits, so
// "snake_case" and "naïve" produce no token.
func Tokenize(text string) []string {
	tokens := []string{}
	var current strings.Builder
	ascii := true

	flush := func() {
		if current.Len() > 0 && ascii {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		ascii = true
	}

	for _, r := range lower(text) {
		if !isWordRune(r) {
			flush()
			continue
		}
		if !isASCIIAlnum(r) {
			ascii = false
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

// StripNonAlphanumeric deletes every character that is not an ASCII letter,
// an ASCII digit or a plain space. Casing and spacing are left untouched.
func StripNonAlphanumeric(text string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || isASCIIAlnum(r) {
			return r
		}
		return -1
	}, text)
}

// RemoveStopwords lower-cases text, splits it on whitespace, drops every
// word that exactly matches one of stopwords and joins the rest with single
// spaces. Original casing is not preserved.
func RemoveStopwords(text string, stopwords []string) string {
	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[w] = struct{}{}
	}

	words := strings.FieldsFunc(lower(text), isSeparator)
	kept := words[:0]
	for _, w := range words {
		if _, drop := stop[w]; !drop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
