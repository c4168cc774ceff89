package lemma

import "testing"

func TestExactLookup(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		wantLemma string
		wantOK    bool
	}{
		{"known inflected form", "kitaplar", "kitap", true},
		{"known present continuous", "geliyorum", "gel", true},
		{"known past tense", "gittim", "git", true},
		{"bare lemma present", "kitap", "kitap", true},
		{"unknown word", "zzzqqqxyz", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lemma, ok := ExactLookup(tt.word)
			if lemma != tt.wantLemma || ok != tt.wantOK {
				t.Errorf("ExactLookup(%q) = (%q, %v), want (%q, %v)", tt.word, lemma, ok, tt.wantLemma, tt.wantOK)
			}
		})
	}
}

func TestIsKnownRoot(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"kitap is a lemma", "kitap", true},
		{"ev is a lemma", "ev", true},
		{"kitaplar is not a lemma itself", "kitaplar", false},
		{"unknown", "zzzqqqxyz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isKnownRoot(tt.in); got != tt.want {
				t.Errorf("isKnownRoot(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDictIntegrity(t *testing.T) {
	const minEntries = 100
	if got := len(dictionary()); got < minEntries {
		t.Fatalf("dictionary has %d entries, want at least %d", got, minEntries)
	}
	for inflected, lemma := range dictionary() {
		if inflected == "" || lemma == "" {
			t.Errorf("dictionary contains an empty inflected form or lemma (lemma=%q)", lemma)
		}
		if !validRoots().Contains(lemma) {
			t.Errorf("lemma %q missing from validRoots set", lemma)
		}
	}
}

func TestLoadDictIdempotent(t *testing.T) {
	first := dictionary()
	second := dictionary()
	if len(first) != len(second) {
		t.Fatalf("dictionary size changed between calls: %d vs %d", len(first), len(second))
	}
}

func BenchmarkExactLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExactLookup("kitaplar")
	}
}
