// Command lemmatize is the thinnest possible stand-in for a host
// runtime driving the lemma core across a process boundary, the way
// the original source's pyo3 bindings drove it in-process for a Python
// host. It reads one Turkish word per line from stdin and writes
// word<TAB>lemma<TAB>source to stdout, where source is "dict" when the
// word was resolved by exact dictionary lookup and "strip" when it was
// resolved by the validated suffix stripper.
//
// Usage:
//
//	echo kitaplar | go run ./cmd/lemmatize
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/az-ai-labs/tr-lemma/lemma"
)

func main() {
	minRootLength := flag.Int("min-root-length", 2, "minimum root length accepted by the stripper")
	checkHarmony := flag.Bool("check-harmony", true, "enforce vowel harmony during suffix stripping")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer func() { _ = w.Flush() }()

	processed := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		lemmaOut, source := resolve(word, *minRootLength, *checkHarmony)
		fmt.Fprintf(w, "%s\t%s\t%s\n", word, lemmaOut, source)
		processed++
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "lemmatize: read error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "lemmatize: processed %d words\n", processed)
}

// resolve reproduces the two-step dispatch a host binding would do:
// try the exact dictionary first, fall back to the validated stripper.
func resolve(word string, minRootLength int, checkHarmony bool) (lemmaOut, source string) {
	if got, ok := lemma.ExactLookup(word); ok {
		return got, "dict"
	}
	return lemma.StripSuffixesValidated(word, false, minRootLength, checkHarmony), "strip"
}
