// Package cloze turns example sentences into cloze-deletion text.
//
// A cloze marker has the form {<ordinal>|<token>}, where ordinal is the
// 1-based position of the synonym on its card.
package cloze

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

// Bounds of the token-to-target length ratio used to highlight candidates.
const (
	minShortestRatio = 0.7
	maxLongestRatio  = 1.5
)

// punctuation is stripped from tokens before matching.
const punctuation = ".,?!"

// Token is one whitespace-delimited word of a sentence.
type Token struct {
	Position  int // 1-based
	Text      string
	Plausible bool
}

// Tokenize splits sentence on whitespace and flags tokens whose length makes
// them a plausible form of target. The flag is a hint for the operator only.
func Tokenize(sentence, target string) []Token {
	fields := strings.Fields(sentence)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{
			Position:  i + 1,
			Text:      f,
			Plausible: IsPlausible(f, target),
		}
	}
	return tokens
}

// IsPlausible reports whether token is length-compatible with target:
// shortest/len(token) >= 0.7 and longest/len(token) <= 1.5, where shortest and
// longest are the rune lengths of target's words. Punctuation and stress marks
// are ignored; an empty token never matches.
func IsPlausible(token, target string) bool {
	n := utf8.RuneCountInString(domain.StripStress(strings.Trim(token, punctuation)))
	if n == 0 {
		return false
	}

	words := strings.Fields(domain.StripStress(target))
	if len(words) == 0 {
		return false
	}
	shortest, longest := -1, 0
	for _, w := range words {
		l := utf8.RuneCountInString(w)
		if shortest < 0 || l < shortest {
			shortest = l
		}
		if l > longest {
			longest = l
		}
	}

	return float64(shortest)/float64(n) >= minShortestRatio &&
		float64(longest)/float64(n) <= maxLongestRatio
}

// Apply wraps every occurrence of each chosen token in sentence with a cloze
// marker for ordinal, then merges adjacent markers of the same ordinal.
// The substitution is global: repeated words are all clozed together. It is
// done in a single pass, so inserted markers are never rewritten, and where
// two tokens match at the same position the longer one wins.
func Apply(sentence string, ordinal int, tokens []string) string {
	seen := make(map[string]struct{}, len(tokens))
	chosen := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.Trim(t, punctuation)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		chosen = append(chosen, t)
	}
	if len(chosen) == 0 {
		return Merge(sentence, ordinal)
	}

	sort.SliceStable(chosen, func(i, j int) bool { return len(chosen[i]) > len(chosen[j]) })
	pairs := make([]string, 0, 2*len(chosen))
	for _, t := range chosen {
		pairs = append(pairs, t, Marker(ordinal, t))
	}
	return Merge(strings.NewReplacer(pairs...).Replace(sentence), ordinal)
}

// Marker formats a single cloze marker.
func Marker(ordinal int, token string) string {
	return fmt.Sprintf("{%d|%s}", ordinal, token)
}

// Merge collapses two markers of ordinal separated by exactly one space into
// one marker: "{1|a} {1|b}" becomes "{1|a b}". Markers separated by anything
// else (punctuation included) stay apart.
func Merge(s string, ordinal int) string {
	return strings.ReplaceAll(s, fmt.Sprintf("} {%d|", ordinal), " ")
}

// SelectTokens returns the texts of the tokens at the given 1-based positions.
// Out-of-range positions are ignored.
func SelectTokens(tokens []Token, positions []int) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		if p < 1 || p > len(tokens) {
			continue
		}
		out = append(out, tokens[p-1].Text)
	}
	return out
}
