package lemma

import "unicode/utf8"

// VowelClass classifies a Turkish vowel along the front/back and
// rounded/unrounded axes used by vowel harmony.
type VowelClass int

const (
	// vowelNone marks a character that is not a Turkish vowel.
	vowelNone VowelClass = iota
	// FrontUnrounded covers e, i.
	FrontUnrounded
	// FrontRounded covers ö, ü.
	FrontRounded
	// BackUnrounded covers a, ı.
	BackUnrounded
	// BackRounded covers o, u.
	BackRounded
)

// isFront reports whether the class sits on the front side of the
// front/back harmony axis. Only the primary axis is enforced by
// CheckVowelHarmony; see the package doc comment for the rounding
// harmony simplification.
func (c VowelClass) isFront() bool {
	return c == FrontUnrounded || c == FrontRounded
}

// classifyVowel maps a single rune to its Turkish vowel class, folding
// case first. Non-vowels (including the caller's own previously-folded
// input) map to vowelNone.
func classifyVowel(r rune) VowelClass {
	switch trLower(r) {
	case 'e', 'i':
		return FrontUnrounded
	case 'ö', 'ü':
		return FrontRounded
	case 'a', 'ı':
		return BackUnrounded
	case 'o', 'u':
		return BackRounded
	default:
		return vowelNone
	}
}

// lastVowelClass scans s from the right and returns the class of the
// first vowel encountered, or vowelNone if s contains no Turkish vowel.
func lastVowelClass(s string) VowelClass {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if c := classifyVowel(r); c != vowelNone {
			return c
		}
		i -= size
	}
	return vowelNone
}

// fixedSuffixes never harmonize: the present-continuous marker, the
// while-marker, the relativizer, and the time-adverbial marker. Checked
// literally, before any vowel is extracted.
var fixedSuffixes = map[string]bool{
	"yor":   true, // present continuous: geliyor
	"ken":   true, // while: giderken
	"ki":    true, // relativizer: masadaki
	"leyin": true, // time-adverbial: sabahleyin
}

// CheckVowelHarmony reports whether suffix harmonizes with root under
// Turkish front/back vowel harmony.
//
//   - If suffix is a fixed (non-harmonizing) morpheme, the predicate is
//     true unconditionally, even for a root with no vowels.
//   - Otherwise, if root has no vowels, harmony cannot be determined and
//     the predicate is false.
//   - If suffix has no vowels, it is a consonantal suffix and always
//     agrees.
//   - Otherwise every vowel in suffix must share the root's last vowel's
//     front/back value. Rounding harmony is intentionally not enforced
//     (spec.md §4.1, §9): Turkish rounding harmony has enough lexical
//     exceptions that enforcing it raises the false-reject rate more
//     than it improves precision at this layer.
func CheckVowelHarmony(root, suffix string) bool {
	if fixedSuffixes[suffix] {
		return true
	}

	rootVowel := lastVowelClass(root)
	if rootVowel == vowelNone {
		return false
	}

	// A suffix with no vowels (or an empty suffix) is consonantal and
	// always agrees; a suffix whose vowels all matched the root's
	// front/back value also agrees.
	for _, r := range suffix {
		c := classifyVowel(r)
		if c == vowelNone {
			continue
		}
		if c.isFront() != rootVowel.isFront() {
			return false
		}
	}
	return true
}

// trLower is the single-rune Turkish lowercase fold used throughout the
// package for comparisons. It is intentionally local (not exported) so
// this package never needs a dependency on internal/trcase: harmony and
// root validation only care about I/ı folding for vowel classification,
// never about round-tripping full word case.
func trLower(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	default:
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return lowerTurkishUpper(r)
	}
}

// lowerTurkishUpper folds the remaining Turkish uppercase letters that
// fall outside the ASCII range (Ç, Ğ, Ö, Ş, Ü).
func lowerTurkishUpper(r rune) rune {
	switch r {
	case 'Ç':
		return 'ç'
	case 'Ğ':
		return 'ğ'
	case 'Ö':
		return 'ö'
	case 'Ş':
		return 'ş'
	case 'Ü':
		return 'ü'
	default:
		return r
	}
}
