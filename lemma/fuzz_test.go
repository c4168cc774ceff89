package lemma

import "testing"

// FuzzStripSuffixesValidated seeds from the worked scenarios and a few
// dictionary words, then lets go test -fuzz explore arbitrary strings.
// It checks three invariants: no input may panic, output length in
// runes never exceeds input length in runes (the stripper only ever
// removes characters), and feeding the result back in under the same
// settings returns it unchanged.
func FuzzStripSuffixesValidated(f *testing.F) {
	seeds := []string{
		"kitaplar", "kitaplardan", "evlerimizden", "geliyorum", "gittim",
		"kitapler", "xyz", "öğrenci", "", "a", "masa", "yapı",
	}
	for _, s := range seeds {
		f.Add(s, true, 2, true)
		f.Add(s, false, 2, true)
	}

	f.Fuzz(func(t *testing.T, word string, strict bool, minRootLength int, checkHarmony bool) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("StripSuffixesValidated(%q, %v, %d, %v) panicked: %v", word, strict, minRootLength, checkHarmony, r)
			}
		}()

		got := StripSuffixesValidated(word, strict, minRootLength, checkHarmony)
		if runeCount(got) > runeCount(word) {
			t.Fatalf("StripSuffixesValidated(%q) = %q, grew past the input", word, got)
		}

		// The function must be total and idempotent once the result is
		// fed back in under the same settings.
		again := StripSuffixesValidated(got, strict, minRootLength, checkHarmony)
		if again != got {
			t.Fatalf("StripSuffixesValidated not idempotent on %q: first %q, second %q", word, got, again)
		}
	})
}

// FuzzExactLookup checks that the dictionary lookup never panics and
// never returns ok=true for an empty lemma.
func FuzzExactLookup(f *testing.F) {
	f.Add("kitaplar")
	f.Add("")
	f.Add("xyz")

	f.Fuzz(func(t *testing.T, word string) {
		lemma, ok := ExactLookup(word)
		if ok && lemma == "" {
			t.Fatalf("ExactLookup(%q) returned ok=true with an empty lemma", word)
		}
	})
}
