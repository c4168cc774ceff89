package lemma

// maxStripIterations bounds the Tier 2b single-suffix loop (spec.md
// §4.5, §9): ten iterations comfortably covers the deepest Turkish
// suffix chains seen in practice while guaranteeing termination.
const maxStripIterations = 10

// stripSession is the ephemeral per-call state of the validated
// stripper: the current candidate, the suffixes already peeled
// (root-adjacent first), and an iteration counter. Created at call
// entry and discarded at return — nothing outlives a single call to
// StripSuffixesValidated (spec.md §3, §5).
type stripSession struct {
	candidate  string
	peeled     []string
	iterations int
}

// newStripSession starts a session at word with no suffixes peeled.
func newStripSession(word string) *stripSession {
	return &stripSession{candidate: word}
}

// sequenceWith returns the hypothetical suffix sequence formed by
// adding suffix ahead of everything already peeled, root-adjacent
// first: [suffix, previously-peeled...].
func (s *stripSession) sequenceWith(suffix string) []string {
	seq := make([]string, 0, len(s.peeled)+1)
	seq = append(seq, suffix)
	seq = append(seq, s.peeled...)
	return seq
}

// commit records a successful peel: the new candidate and the suffix
// that produced it, prepended to the peeled list (root-adjacent
// first).
func (s *stripSession) commit(newCandidate, suffix string) {
	s.peeled = append([]string{suffix}, s.peeled...)
	s.candidate = newCandidate
}
