// Package textcmp implements the comparison core: normalization, word
// splitting, positional scoring, and per-word classification.
package textcmp

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/recite/internal/model"
)

// isInvisible reports whether r is a zero-width or BOM rune that must never
// take part in a comparison.
func isInvisible(r rune) bool {
	switch r {
	case '\u200B', // zero width space
		'\u200C', // zero width non-joiner
		'\u200D', // zero width joiner
		'\u200E', // left-to-right mark
		'\u200F', // right-to-left mark
		'\uFEFF': // byte order mark
		return true
	}
	return false
}

// Normalize canonicalizes text for comparison. Zero-width and BOM runes are
// removed unconditionally, punctuation/symbol stripping and case folding
// follow the options, in that order. Whitespace is left untouched.
func Normalize(text string, opts model.Options) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isInvisible(r) {
			continue
		}
		if opts.IgnorePunctuation && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if opts.IgnoreCase {
		out = strings.ToLower(out)
	}
	return out
}

// SplitWords splits text on whitespace runs, dropping empty tokens.
func SplitWords(text string) []string {
	return strings.Fields(text)
}
