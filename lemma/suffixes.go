package lemma

import "sort"

// compoundSuffixes are multi-morpheme clusters peeled atomically in the
// stripper's Tier 2a pass, before the single-suffix iteration begins.
// Peeling these as one unit avoids the quadratic cost of repeatedly
// peeling their constituent short morphemes one at a time, and covers a
// common class of inputs in a single step (spec.md §4.4).
var compoundSuffixes = []string{
	"madım", "medim", // negation + past + 1sg: gelmedim
	"madın", "medin", // negation + past + 2sg
	"madık", "medik", // negation + past + 1pl
	"muyor", "müyor", "mıyor", "miyor", // negation + pres.cont
	"acağım", "eceğim", // future + 1sg
	"ıyorum", "iyorum", "uyorum", "üyorum", // pres.cont + 1sg
	"dığım", "diğim", "duğum", "düğüm", // tense/aspect + 1sg (participial)
	"makta", "mekte", // aorist-progressive (mak/mek + ta/te)
}

// nominalSuffixes are the single-morpheme nominal suffixes (plural,
// possessive, case, copula), drawn from the nominal slot map.
var nominalSuffixes = mapKeys(nominalSlots)

// verbalSuffixes are the single-morpheme verbal suffixes (voice,
// negation, tense/aspect, person, copula), drawn from the verbal slot
// map.
var verbalSuffixes = mapKeys(verbalSlots)

// mapKeys returns the keys of m as a slice, in unspecified order.
func mapKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// allSingleSuffixes is the deduplicated union of nominalSuffixes and
// verbalSuffixes, sorted by surface length descending for greedy
// longest-match scanning in the stripper's Tier 2b loop (spec.md §4.4).
// Computed once: the underlying slot maps never change after package
// init.
var allSingleSuffixes = buildSingleSuffixList()

// DetachedSuffixes returns the full inventory of suffixes the stripper
// knows how to peel: every compound cluster from Tier 2a, in the order
// Tier 2a scans them, followed by every single morpheme from Tier 2b,
// longest-first.
// Grounded on the original source's get_detached_suffixes, which
// exposed its compiled-in suffix list to its host runtime for
// diagnostic and tooling use; this repository has no equivalent
// embedded text file because the inventory is a Go source artifact
// here rather than data, so the function derives it directly from
// compoundSuffixes and allSingleSuffixes instead of a separate file.
func DetachedSuffixes() []string {
	out := make([]string, 0, len(compoundSuffixes)+len(allSingleSuffixes))
	out = append(out, compoundSuffixes...)
	out = append(out, allSingleSuffixes...)
	return out
}

func buildSingleSuffixList() []string {
	seen := make(map[string]bool, len(nominalSuffixes)+len(verbalSuffixes))
	union := make([]string, 0, len(nominalSuffixes)+len(verbalSuffixes))
	for _, s := range nominalSuffixes {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
		}
	}
	for _, s := range verbalSuffixes {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
		}
	}
	sort.Slice(union, func(i, j int) bool {
		li, lj := len([]rune(union[i])), len([]rune(union[j]))
		if li != lj {
			return li > lj
		}
		return union[i] < union[j] // deterministic tiebreak
	})
	return union
}
