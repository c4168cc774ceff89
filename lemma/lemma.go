// Package lemma implements a multi-tier lemmatizer for agglutinative
// Turkish morphology. Given an inflected Turkish word, it returns the
// canonical root (lemma) — the bare stem with inflectional suffixes
// removed — while refusing to produce linguistically impossible roots.
//
// Three validators gate every proposed suffix peel and must agree
// before it is accepted:
//
//   - CheckVowelHarmony enforces front/back agreement between a stem
//     and a candidate suffix.
//   - ValidateMorphotacticSequence enforces Turkish suffix-ordering
//     (nominal: Plural→Possessive→Case→Copula; verbal: Voice→Negation→
//     Tense/Aspect→Person→Copula).
//   - RootValidator rejects candidate stems that aren't plausible free
//     Turkish roots, either by dictionary membership (strict mode) or
//     by phonotactic shape (lenient mode).
//
// The package provides two API layers:
//
//   - Convenience: StripSuffixesValidated returns just the lemma
//     string, consulting the embedded dictionary first when strict is
//     set and otherwise going straight to the validated iterative
//     stripper. StripSuffixes is a
//     faster, unvalidated fallback for callers that don't need the
//     three-predicate guarantee.
//   - Direct: ExactLookup, CheckVowelHarmony, and
//     ValidateMorphotacticSequence expose the individual tiers for
//     callers that want to drive them separately.
//
// The lemmatizer is total: every call returns a string, never an
// error. Inputs that cannot be safely stripped (no vowels, below the
// minimum root length, unrecognized suffixes throughout) are returned
// unchanged.
//
// The embedded dictionary and the derived valid-roots set are populated
// once, lazily, on first use; the suffix tables, the morphotactic slot
// maps and the bound-stem set are built at package initialization. None
// of this state is mutated afterward.
// All exported functions are safe for concurrent use by multiple
// goroutines.
//
// Known limitations (v1.0):
//
//   - Rounding harmony (o/ö/u/ü agreement) is not enforced, only
//     front/back harmony. See CheckVowelHarmony's doc comment.
//   - No derivational analysis (noun→verb formation, etc.).
//   - No morphological feature tags are returned, only the bare stem.
//   - Homographs are not disambiguated by context; a single best stem
//     is returned.
//   - The bound-stem list and forbidden-cluster list are small, closed
//     sets; growing them requires a code change, not configuration.
package lemma
