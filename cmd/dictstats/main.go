// Command dictstats reports summary statistics about lemma/dict.txt,
// parallel to the teacher's cmd/dictgen: where dictgen builds the
// dictionary from a Wiktionary dump, dictstats inspects the dictionary
// already embedded in the binary.
//
// Usage:
//
//	go run ./cmd/dictstats [-json]
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/az-ai-labs/tr-lemma/lemma"
	"github.com/az-ai-labs/tr-lemma/resources"
)

func main() {
	asJSON := flag.Bool("json", false, "print the resources.Report as JSON instead of a text summary")
	flag.Parse()

	report := resources.Build()

	if *asJSON {
		out, err := report.JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "dictstats: marshal report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	entries, lemmas := lemma.DictSize()
	fmt.Fprintf(os.Stderr, "Dictionary entries:  %d\n", entries)
	fmt.Fprintf(os.Stderr, "Distinct lemmas:     %d\n", lemmas)
	fmt.Fprintf(os.Stderr, "Bound stems:         %d\n", lemma.BoundStemCount())
	fmt.Fprintf(os.Stderr, "Base stopwords:      %d\n", report.StopwordsBase)

	domains := make([]string, 0, len(report.StopwordsDomains))
	for name := range report.StopwordsDomains {
		domains = append(domains, name)
	}
	sort.Strings(domains)
	for _, name := range domains {
		fmt.Fprintf(os.Stderr, "  domain %-14s %d\n", name+":", report.StopwordsDomains[name])
	}
}
