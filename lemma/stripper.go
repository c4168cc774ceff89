package lemma

import "strings"

// coreSuffixes is the small fixed suffix list used by the naive
// StripSuffixes fallback: no harmony, morphotactics, or root-validity
// check, just greedy longest-available peeling with a length guard.
// Grounded on the original source's strip_suffixes proof-of-concept
// (src/lib.rs), kept for callers that want a fast, unvalidated pass.
var coreSuffixes = []string{"lar", "ler", "nin", "nın", "den", "dan", "du", "dün"}

// StripSuffixes applies a naive greedy stripper over a small core
// suffix list, with no vowel-harmony, morphotactic, or root-validity
// checks. It is a fast fallback for callers that don't need the
// validated guarantees of StripSuffixesValidated.
func StripSuffixes(word string) string {
	current := word
	for {
		stripped := false
		for _, suffix := range coreSuffixes {
			// Keeps at least a two-character root after the peel,
			// preventing over-stripping short words down to nothing.
			if strings.HasSuffix(current, suffix) && runeCount(current[:len(current)-len(suffix)]) >= 2 {
				current = current[:len(current)-len(suffix)]
				stripped = true
				break
			}
		}
		if !stripped {
			return current
		}
	}
}

// StripSuffixesValidated is the full validator-guided iterative
// stripper of spec.md §4.5.
//
// Tier 1 consults the dictionary directly when strict is set. Tier 2a
// peels one compound suffix cluster if any passes all three predicates.
// Tier 2b iterates single suffixes, longest first, up to
// maxStripIterations times, committing any peel that passes root
// validity, vowel harmony (unless disabled or the suffix is fixed),
// and morphotactic sequence validity. Final resolution prefers a
// dictionary hit, then the configured root validator, then the best
// candidate ever committed (defaulting to the input unchanged).
func StripSuffixesValidated(word string, strict bool, minRootLength int, checkHarmony bool) string {
	// Tier 1: exact dictionary lookup.
	if strict {
		if lemma, ok := ExactLookup(word); ok {
			return lemma
		}
	}

	validator := NewRootValidator(minRootLength, strict)
	session := newStripSession(word)

	stripCompound(session, validator, checkHarmony)
	stripSingle(session, validator, checkHarmony)

	return resolveFinal(session)
}

// stripCompound runs Tier 2a: at most one compound-suffix peel.
func stripCompound(s *stripSession, validator RootValidator, checkHarmony bool) {
	for _, suffix := range compoundSuffixes {
		if !strings.HasSuffix(s.candidate, suffix) {
			continue
		}
		peeled := s.candidate[:len(s.candidate)-len(suffix)]
		if peeled == "" {
			continue
		}
		if !validator.IsValidRoot(peeled) {
			continue
		}
		if !harmonyOK(peeled, suffix, checkHarmony) {
			continue
		}
		if !ValidateMorphotacticSequence([]string{suffix}) {
			continue
		}
		s.commit(peeled, suffix)
		return // leave the compound pass after the first accepted peel
	}
}

// stripSingle runs Tier 2b: bounded single-suffix iteration.
func stripSingle(s *stripSession, validator RootValidator, checkHarmony bool) {
	for s.iterations < maxStripIterations {
		if isKnownRoot(s.candidate) {
			return
		}

		s.iterations++
		if !tryOnePeel(s, validator, checkHarmony) {
			return // no suffix in the scan passed; nothing more to do
		}
	}
}

// tryOnePeel scans allSingleSuffixes (longest first) for one that peels
// and passes every predicate, committing it. Returns false if no
// suffix in the scan qualifies, which ends the Tier 2b loop.
//
// A peel that lands exactly on a dictionary lemma is committed and
// accepted without ever calling validator.IsValidRoot on it — the
// short-circuit spec.md §4.5 describes, resolved against §9's Open
// Question in DESIGN.md: dictionary membership wins over a phonotactic
// rejection (e.g. a bound-stem match) that would otherwise apply to
// the same candidate.
func tryOnePeel(s *stripSession, validator RootValidator, checkHarmony bool) bool {
	for _, suffix := range allSingleSuffixes {
		if !strings.HasSuffix(s.candidate, suffix) {
			continue
		}
		peeled := s.candidate[:len(s.candidate)-len(suffix)]
		if runeCount(peeled) < validator.MinRootLength {
			continue
		}

		seq := s.sequenceWith(suffix)

		if !ValidateMorphotacticSequence(seq) {
			continue
		}
		if !harmonyOK(peeled, suffix, checkHarmony) {
			continue
		}

		// Dictionary short-circuit takes precedence over any further
		// phonotactic rejection of this exact candidate (spec.md §9's
		// Open Question, resolved in DESIGN.md): a peel landing on a
		// known lemma is accepted and returned immediately, without
		// ever calling validator.IsValidRoot on it.
		if isKnownRoot(peeled) {
			s.commit(peeled, suffix)
			return true
		}

		if !validator.IsValidRoot(peeled) {
			continue
		}

		s.commit(peeled, suffix)
		return true
	}
	return false
}

// harmonyOK reports whether peeling suffix off a stem ending in peeled
// is permitted under vowel harmony: true if harmony checking is
// disabled, the suffix is fixed, or CheckVowelHarmony accepts it.
func harmonyOK(peeled, suffix string, checkHarmony bool) bool {
	if !checkHarmony || fixedSuffixes[suffix] {
		return true
	}
	return CheckVowelHarmony(peeled, suffix)
}

// resolveFinal implements spec.md §4.5 step 4. Every commit during the
// session already passed the dictionary check or the configured root
// validator (tryOnePeel and stripCompound never commit otherwise), so
// the session's candidate already is the answer: a dictionary lemma, a
// phonotactically valid root, or — if nothing ever passed — the
// original input, untouched.
func resolveFinal(s *stripSession) string {
	return s.candidate
}
