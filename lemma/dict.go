package lemma

import (
	_ "embed"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

//go:embed dict.txt
var dictRaw string

var (
	dictOnce  sync.Once
	dictTable map[string]string
	rootsSet  mapset.Set[string]
)

// loadDict parses dictRaw into dictTable and rootsSet exactly once,
// idempotently and safely for concurrent first callers: sync.Once
// guarantees only one goroutine runs the body, every other caller
// (concurrent or later) blocks until it's done and then observes the
// same result (spec.md §5, §9).
//
// Lines are inflected<TAB>lemma. Empty lines and lines starting with
// '#' are skipped. Leading/trailing whitespace on both fields is
// trimmed. Malformed lines (no tab) are skipped silently: the
// dictionary shrinks but the core remains functional (spec.md §7).
func loadDict() {
	dictOnce.Do(func() {
		table := make(map[string]string)
		roots := mapset.NewThreadUnsafeSet[string]()

		for _, line := range strings.Split(dictRaw, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inflected, lemma, ok := strings.Cut(line, "\t")
			if !ok {
				continue
			}
			inflected = strings.TrimSpace(inflected)
			lemma = strings.TrimSpace(lemma)
			if inflected == "" || lemma == "" {
				continue
			}
			table[inflected] = lemma
			roots.Add(lemma)
		}

		dictTable = table
		rootsSet = roots
	})
}

// dictionary returns the process-wide inflected-form-to-lemma map,
// initializing it on first use.
func dictionary() map[string]string {
	loadDict()
	return dictTable
}

// validRoots returns the process-wide set of known lemmas (the
// dictionary's codomain), used by RootValidator in strict mode for
// O(1) membership tests.
func validRoots() mapset.Set[string] {
	loadDict()
	return rootsSet
}

// ExactLookup performs Tier 1 dictionary consultation: if word is a
// known inflected form, its mapped lemma is returned.
func ExactLookup(word string) (string, bool) {
	lemma, ok := dictionary()[word]
	return lemma, ok
}

// DictSize returns the number of inflected-form entries in the
// dictionary and the number of distinct lemmas they resolve to, for
// resource-reporting tools.
func DictSize() (entries, lemmas int) {
	loadDict()
	return len(dictTable), validRoots().Cardinality()
}

// isKnownRoot reports whether candidate is itself a lemma (a member of
// the valid-roots set), used by the stripper to short-circuit as soon
// as a peel produces a dictionary lemma.
func isKnownRoot(candidate string) bool {
	return validRoots().Contains(candidate)
}
