// Package normalize puts Turkish text into the canonical form the
// lemma core expects: NFC-composed Unicode with Turkish-aware case
// folding applied. It performs no morphological analysis; it only
// marshals text into the shape lemma.StripSuffixesValidated and
// lemma.ExactLookup were built against.
//
// Two functions are provided, grounded on the same convenience split
// the original source exposed as fast_normalize and this repository's
// tokenizer-based word splitting:
//
//   - Normalize processes full text: tokenizes, folds each word, and
//     reassembles around the non-word spans untouched.
//   - NormalizeWord folds a single word directly, without tokenizing.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - This package does not restore missing diacritics or correct
//     spelling; it only normalizes Unicode form and case.
//   - Input larger than maxInputBytes is returned unchanged rather
//     than processed, to bound worst-case tokenization cost.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/tr-lemma/internal/trcase"
	"github.com/az-ai-labs/tr-lemma/tokenizer"
)

// maxInputBytes bounds Normalize's input size; larger input is
// returned unchanged rather than tokenized.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize folds s to NFC and Turkish-lowercases every word-type
// token, leaving numbers, punctuation, URLs, emoticons, and the
// whitespace between tokens untouched. Returns s unchanged for empty
// or oversized input.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = norm.NFC.String(s)

	tokens := tokenizer.WordTokens(s)
	if len(tokens) == 0 {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	cursor := 0
	for _, tok := range tokens {
		if tok.Start > cursor {
			b.WriteString(string(runes[cursor:tok.Start]))
		}
		if tok.Type == tokenizer.Word {
			b.WriteString(trcase.ToLower(tok.Text))
		} else {
			b.WriteString(tok.Text)
		}
		cursor = tok.End
	}
	if cursor < len(runes) {
		b.WriteString(string(runes[cursor:]))
	}

	return b.String()
}

// NormalizeWord folds a single word to NFC and Turkish-lowercases it,
// without tokenizing. Returns the input unchanged if empty.
func NormalizeWord(word string) string {
	if word == "" {
		return word
	}
	return trcase.ToLower(norm.NFC.String(word))
}
