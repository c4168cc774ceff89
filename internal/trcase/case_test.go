package trcase

import "testing"

func TestLower(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'I', 'ı'},
		{'İ', 'i'},
		{'A', 'a'},
		{'Ö', 'ö'},
		{'z', 'z'},
	}
	for _, tt := range tests {
		if got := Lower(tt.r); got != tt.want {
			t.Errorf("Lower(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestUpper(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'i', 'İ'},
		{'ı', 'I'},
		{'a', 'A'},
		{'ö', 'Ö'},
		{'Z', 'Z'},
	}
	for _, tt := range tests {
		if got := Upper(tt.r); got != tt.want {
			t.Errorf("Upper(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestToLowerToUpper(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantLower string
		wantUpper string
	}{
		{"istanbul", "İSTANBUL", "istanbul", "İSTANBUL"},
		{"isik", "IŞIK", "ışık", "IŞIK"},
		{"ogrenci", "öğrenci", "öğrenci", "ÖĞRENCİ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLower(tt.in); got != tt.wantLower {
				t.Errorf("ToLower(%q) = %q, want %q", tt.in, got, tt.wantLower)
			}
			if got := ToUpper(tt.in); got != tt.wantUpper {
				t.Errorf("ToUpper(%q) = %q, want %q", tt.in, got, tt.wantUpper)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	words := []string{"kitap", "İstanbul", "ışık", "öğrenci", "ÇOCUK"}
	for _, w := range words {
		folded := ToLower(w)
		if ToLower(folded) != folded {
			t.Errorf("ToLower not idempotent on %q: %q then %q", w, folded, ToLower(folded))
		}
	}
}
