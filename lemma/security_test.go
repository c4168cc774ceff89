package lemma

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

// TestRecursionDepthLimit verifies maxStripIterations bounds Tier 2b
// even against inputs engineered to match many suffixes in sequence.
func TestRecursionDepthLimit(t *testing.T) {
	deeply := "evlerimizinizdenmiş" // many overlapping suffix-like tails
	got := StripSuffixesValidated(deeply, false, 2, true)
	if got == "" {
		t.Errorf("StripSuffixesValidated(%q) returned empty", deeply)
	}

	synthetic := "a" + strings.Repeat("lar", 50)
	got = StripSuffixesValidated(synthetic, false, 2, true)
	if got == "" {
		t.Errorf("StripSuffixesValidated(%q) returned empty", synthetic)
	}
}

func TestMalformedUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid byte sequence", "kitab\xFF\xFElar"},
		{"truncated multibyte sequence", "kitab\xC3"},
		{"overlong encoding", "kitab\xC0\x80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if utf8.ValidString(tt.input) {
				t.Skip("test input is valid UTF-8, cannot test malformed case")
			}
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("StripSuffixesValidated(%q) panicked: %v", tt.input, r)
				}
			}()
			_ = StripSuffixesValidated(tt.input, false, 2, true)
			_ = StripSuffixes(tt.input)
			_, _ = ExactLookup(tt.input)
		})
	}
}

func TestEmptyAndControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"null byte", "\x00"},
		{"tab", "\t"},
		{"newline", "\n"},
		{"only punctuation", "!!!"},
		{"mixed digits", "a1b2c3"},
		{"null in middle", "kitab\x00lar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("StripSuffixesValidated(%q) panicked: %v", tt.input, r)
				}
			}()
			got := StripSuffixesValidated(tt.input, false, 2, true)
			if tt.input == "" && got != "" {
				t.Errorf("StripSuffixesValidated(\"\") = %q, want empty", got)
			}
		})
	}
}

func TestControlCharacterSuffixScan(t *testing.T) {
	for i := 0; i < 32; i++ {
		t.Run(fmt.Sprintf("control_0x%02X", i), func(t *testing.T) {
			input := "kitab" + string(rune(i)) + "lar"
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("StripSuffixesValidated with control char 0x%02X panicked: %v", i, r)
				}
			}()
			_ = StripSuffixesValidated(input, false, 2, true)
		})
	}
}

func TestExtremeUnicodeCodepoints(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"emoji", "kitab😀lar"},
		{"supplementary plane", "kitab\U0001F600lar"},
		{"replacement character", "kitab�lar"},
		{"combining diacritics", "kitab́lar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("StripSuffixesValidated(%q) panicked: %v", tt.name, r)
				}
			}()
			_ = StripSuffixesValidated(tt.input, false, 2, true)
			_ = StripSuffixesValidated(tt.input, true, 2, true)
		})
	}
}

func TestVeryLongInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-input test in short mode")
	}
	long := strings.Repeat("kitaplardan ", 1000)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("StripSuffixesValidated on long input panicked: %v", r)
		}
	}()
	_ = StripSuffixesValidated(long, false, 2, true)
}
