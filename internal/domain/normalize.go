package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares a lookup key:
//   - NFC-normalizes the input
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isStressMark matches the combining acute and grave accents Wiktionary uses
// to mark stress. Other marks (breve in й, diaeresis in ё) are kept.
func isStressMark(r rune) bool {
	return r == '\u0301' || r == '\u0300'
}

// StripStress removes stress marks from s.
func StripStress(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isStressMark)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	head := cases.Upper(language.Und).String(string(r))
	return head + cases.Lower(language.Und).String(s[size:])
}
