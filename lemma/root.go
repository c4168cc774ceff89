package lemma

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// defaultMinRootLength is the minimum candidate length (in characters)
// applied when a caller doesn't override it (spec.md §4.3).
const defaultMinRootLength = 2

// boundStems is a closed list of substrings that look root-like but are
// never free Turkish words on their own: stripping one more suffix past
// them would over-strip a real root. The list is intentionally small
// and external to the validator logic (spec.md §9) so it can grow from
// corpus analysis without touching the phonotactic rules themselves.
var boundStems = mapset.NewThreadUnsafeSet(
	"öğrenc", // öğrenci with its final vowel peeled
	"öğret",  // öğretmen/öğretim stem, never a free word alone
	"yapı",   // looks like a free root (yapı "structure") but the bound
	// reading (yap+ı, verb+nominalizer) must not be re-derived by
	// peeling further past it
)

// forbiddenFinalClusters is a closed list of two-character sequences
// that cannot legally end a Turkish root: voiceless-stop-plus-stop
// combinations and the impossible nasal-plus-stop endings.
var forbiddenFinalClusters = []string{
	"çk", "çp", "çt", "ğk", "ğp", "ğt",
	"kb", "kc", "kç", "kg", "kğ",
	"pb", "pc", "pç", "pg", "pğ",
	"tb", "tc", "tç", "tg", "tğ",
	"nd", "nt", "nk", "ng",
}

var sonorants = map[rune]bool{'l': true, 'r': true, 'n': true, 'm': true, 'y': true}
var voicelessStops = map[rune]bool{'p': true, 'ç': true, 't': true, 'k': true}

// RootValidator decides whether a candidate stem is an acceptable free
// Turkish root, in one of two modes.
type RootValidator struct {
	// MinRootLength is the minimum acceptable character count.
	MinRootLength int
	// Strict requires membership in the valid-roots set derived from
	// the lemma dictionary. Lenient applies the phonotactic checks of
	// spec.md §4.3 instead.
	Strict bool
}

// NewRootValidator returns a validator with the given settings. A
// minRootLength of 0 or less falls back to defaultMinRootLength.
func NewRootValidator(minRootLength int, strict bool) RootValidator {
	if minRootLength <= 0 {
		minRootLength = defaultMinRootLength
	}
	return RootValidator{MinRootLength: minRootLength, Strict: strict}
}

// IsValidRoot reports whether candidate passes this validator's checks.
// Case folding is performed once internally for comparisons; the
// candidate itself is never modified.
func (v RootValidator) IsValidRoot(candidate string) bool {
	if v.Strict {
		return validRoots().Contains(trFold(candidate))
	}

	if runeCount(candidate) < v.MinRootLength {
		return false
	}

	return checkPhonotactics(candidate)
}

// checkPhonotactics applies the lenient-mode checks of spec.md §4.3:
// bound-stem exclusion, vowel presence, forbidden final clusters,
// final-character class, and syllable structure.
func checkPhonotactics(candidate string) bool {
	if candidate == "" {
		return false
	}
	folded := trFold(candidate)

	if isBoundStem(folded) {
		return false
	}

	runes := []rune(folded)
	vowelCount := 0
	for _, r := range runes {
		if classifyVowel(r) != vowelNone {
			vowelCount++
		}
	}
	if vowelCount == 0 {
		return false
	}

	for _, cluster := range forbiddenFinalClusters {
		if strings.HasSuffix(folded, cluster) {
			return false
		}
	}

	last := runes[len(runes)-1]
	switch {
	case classifyVowel(last) != vowelNone:
		return true
	case sonorants[last] || voicelessStops[last]:
		return checkSyllableStructure(len(runes), vowelCount)
	default:
		return true
	}
}

// BoundStemCount returns the number of entries in the bound-stem list,
// for resource-reporting tools that don't otherwise need access to
// morphology internals.
func BoundStemCount() int {
	return boundStems.Cardinality()
}

// isBoundStem reports whether candidate equals a bound stem or ends
// with one as a suffix (i.e. the bound stem is the tail of the
// candidate).
func isBoundStem(folded string) bool {
	for _, bound := range boundStems.ToSlice() {
		if folded == bound || strings.HasSuffix(folded, bound) {
			return true
		}
	}
	return false
}

// checkSyllableStructure applies the vowel-to-length ratio bound of
// spec.md §4.3 step 6: rejects both vowel-starved and implausibly
// vowel-heavy candidates. Candidates of three characters or fewer skip
// the ratio check (too short to judge meaningfully) but still require
// at least one vowel, already guaranteed by the caller.
func checkSyllableStructure(runeLen, vowelCount int) bool {
	if vowelCount < 1 {
		return false
	}
	if runeLen <= 3 {
		return true
	}
	ratio := float64(vowelCount) / float64(runeLen)
	return ratio >= 0.2 && ratio <= 0.7
}

// runeCount returns the character (not byte) length of s.
func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// trFold lowercases s using Turkish-aware rules, for the single
// case-fold-before-comparison step spec.md §4.3 requires.
func trFold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(trLower(r))
	}
	return b.String()
}
