// Package resources reports counts and checksums of the data compiled
// into the binary, so downstream tooling can verify which resource
// snapshot a binary was built against without re-parsing the dictionary
// or stopword lists itself.
//
// Grounded on the teacher's data/embed.go //go:embed pattern (here
// applied to lemma.DictSize, lemma.BoundStemCount, and the stopwords
// package rather than a single shared data package, since each
// collaborator owns and embeds its own resource files) and the original
// source's RESOURCE_METADATA / get_stopwords_metadata, which exposed a
// JSON blob describing the embedded resources to its host runtime.
package resources

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/az-ai-labs/tr-lemma/lemma"
	"github.com/az-ai-labs/tr-lemma/stopwords"
)

// Report summarizes the resources compiled into this binary.
type Report struct {
	DictEntries      int               `json:"dict_entries"`
	DictLemmas       int               `json:"dict_lemmas"`
	BoundStems       int               `json:"bound_stems"`
	StopwordsBase    int               `json:"stopwords_base"`
	StopwordsDomains map[string]int    `json:"stopwords_domains"`
	Checksums        map[string]string `json:"checksums"`
}

// Build assembles a Report from the currently loaded resources. Safe
// for concurrent use; every call recomputes checksums from the current
// in-memory word lists, so it always reflects what this process has
// embedded, not a previous snapshot.
func Build() Report {
	entries, lemmas := lemma.DictSize()

	base := stopwords.Base()
	domainNames := stopwords.Domains()
	domainCounts := make(map[string]int, len(domainNames))
	for _, name := range domainNames {
		domainCounts[name] = len(stopwords.Domain(name))
	}

	return Report{
		DictEntries:      entries,
		DictLemmas:       lemmas,
		BoundStems:       lemma.BoundStemCount(),
		StopwordsBase:    len(base),
		StopwordsDomains: domainCounts,
		Checksums: map[string]string{
			"stopwords_base": checksum(base),
		},
	}
}

// checksum returns the hex-encoded SHA-256 digest of the newline-joined,
// sorted-by-caller-order word list, letting a consumer detect whether
// the embedded list changed between two builds without shipping the
// list itself.
func checksum(words []string) string {
	sum := sha256.Sum256([]byte(strings.Join(words, "\n")))
	return hex.EncodeToString(sum[:])
}

// JSON renders the report as indented JSON, matching the shape the
// original source's get_stopwords_metadata exposed to its host runtime
// as a plain string.
func (r Report) JSON() (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
