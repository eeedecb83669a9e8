// Package tokenize splits text into sentences and word tokens.
//
// It is a small rule-based replacement for corpus-driven tokenizers: sentence
// boundaries are terminal punctuation followed by whitespace, except after
// a known abbreviation or a single-letter initial. Word tokens are runs of
// letters and digits joined by inner hyphens or apostrophes; every other
// non-space rune is its own token. Tokens remember the whitespace that
// preceded them so a token sequence can be joined back without disturbing
// punctuation.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	tokenPattern      = regexp.MustCompile(`[\p{L}\p{N}]+(?:[-'’][\p{L}\p{N}]+)*|[^\s\p{L}\p{N}]`)
	terminatorPattern = regexp.MustCompile(`[.!?]+["'”’)\]]*(?:\s+|$)`)
)

// abbreviations never end a sentence when followed by a single period
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "sr": true, "jr": true,
	"st": true, "vs": true, "etc": true, "al": true, "e.g": true, "i.e": true, "cf": true,
	"approx": true, "eds": true, "inc": true, "ltd": true,
}

// numberedAbbreviations only continue the sentence when a number follows,
// as in "No. 5" or "Jan. 3"
var numberedAbbreviations = map[string]bool{
	"no": true, "vol": true, "pp": true, "p": true, "fig": true, "ed": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true,
	"aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
}

// titles only continue the sentence when written capitalized and followed by
// a capitalized name, as in "Gen. Grant"
var titles = map[string]bool{
	"Gen": true, "Col": true, "Lt": true, "Capt": true, "Gov": true,
	"Sen": true, "Rev": true, "Co": true,
}

// Token is a single word or punctuation mark
type Token struct {
	Text        string
	SpaceBefore string
}

// Normalize returns text in Unicode normalization form C
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Sentences splits text into trimmed sentences, keeping terminal punctuation
func Sentences(text string) []string {
	text = Normalize(text)

	var sentences []string
	start := 0
	for _, loc := range terminatorPattern.FindAllStringIndex(text, -1) {
		if !isBoundary(text, start, loc[0], loc[1]) {
			continue
		}
		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// isBoundary reports whether the terminator at text[pos:end] closes a sentence
func isBoundary(text string, start, pos, end int) bool {
	punct := strings.TrimRightFunc(text[pos:end], unicode.IsSpace)
	if strings.ContainsAny(punct, "!?") || strings.Count(punct, ".") > 1 || end == len(text) {
		return true
	}

	prev := text[start:pos]
	if i := strings.LastIndexFunc(prev, unicode.IsSpace); i >= 0 {
		prev = prev[i+1:]
	}
	prev = strings.TrimLeft(prev, `"'([“‘`)
	if prev == "" {
		return true
	}

	lower := strings.ToLower(prev)
	next, _ := utf8.DecodeRuneInString(text[end:])
	switch {
	case abbreviations[lower]:
		return false
	case numberedAbbreviations[lower] && unicode.IsDigit(next):
		return false
	case titles[prev] && unicode.IsUpper(next):
		return false
	}

	runes := []rune(prev)
	if len(runes) == 1 && unicode.IsUpper(runes[0]) {
		return false
	}
	return true
}

// Tokenize splits a sentence (or any text) into tokens
func Tokenize(text string) []Token {
	text = Normalize(text)

	locs := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(locs))
	prevEnd := 0
	for _, loc := range locs {
		tokens = append(tokens, Token{
			Text:        text[loc[0]:loc[1]],
			SpaceBefore: text[prevEnd:loc[0]],
		})
		prevEnd = loc[1]
	}
	return tokens
}

// Join reassembles tokens using their recorded spacing. Leading whitespace
// of the first token is dropped.
func Join(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString(tok.SpaceBefore)
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Words returns the lowercased alphabetic tokens of text. A contraction
// counts as its stem ("don't" as "do", "it's" as "it"); hyphenated compounds
// are not alphabetic and are skipped.
func Words(text string) []string {
	var words []string
	for _, tok := range Tokenize(text) {
		if w := stem(tok.Text); IsAlpha(w) {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

// stem strips a trailing clitic ("n't", "'s", "'re", ...) from a contraction
func stem(tok string) string {
	if strings.Contains(tok, "-") {
		return tok
	}
	lower := strings.ToLower(tok)
	for _, suffix := range []string{"n't", "n’t"} {
		if strings.HasSuffix(lower, suffix) && len(tok) > len(suffix) {
			return tok[:len(tok)-len(suffix)]
		}
	}
	if i := strings.LastIndexAny(tok, "'’"); i > 0 {
		return tok[:i]
	}
	return tok
}

// IsAlpha reports whether s is non-empty and consists only of letters
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
