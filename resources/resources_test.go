package resources

import "testing"

func TestBuildReportsNonZeroCounts(t *testing.T) {
	r := Build()
	if r.DictEntries == 0 {
		t.Error("Build().DictEntries = 0, want > 0")
	}
	if r.DictLemmas == 0 {
		t.Error("Build().DictLemmas = 0, want > 0")
	}
	if r.BoundStems == 0 {
		t.Error("Build().BoundStems = 0, want > 0")
	}
	if r.StopwordsBase == 0 {
		t.Error("Build().StopwordsBase = 0, want > 0")
	}
	if len(r.StopwordsDomains) == 0 {
		t.Error("Build().StopwordsDomains is empty, want at least one registered domain")
	}
	if r.Checksums["stopwords_base"] == "" {
		t.Error("Build().Checksums[\"stopwords_base\"] is empty")
	}
}

func TestBuildDeterministicAcrossCalls(t *testing.T) {
	a := Build()
	b := Build()
	if a.DictEntries != b.DictEntries || a.Checksums["stopwords_base"] != b.Checksums["stopwords_base"] {
		t.Error("Build() is not deterministic across calls within the same process")
	}
}

func TestJSONRoundTripsValidJSON(t *testing.T) {
	r := Build()
	s, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if s == "" {
		t.Fatal("JSON() returned an empty string")
	}
	if s[0] != '{' {
		t.Errorf("JSON() = %q, want it to start with '{'", s)
	}
}
