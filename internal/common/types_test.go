package common

import "testing"

func TestSeverityRankOrdering(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		if Severities[i-1].Rank() >= Severities[i].Rank() {
			t.Fatalf("expected %s to rank below %s", Severities[i-1], Severities[i])
		}
	}
	if Severity("bogus").Rank() != 0 {
		t.Fatalf("unknown severity should rank 0, got %d", Severity("bogus").Rank())
	}
}

func TestSeverityElevated(t *testing.T) {
	cases := map[Severity]bool{
		SeverityLow:      false,
		SeverityMedium:   false,
		SeverityHigh:     true,
		SeverityCritical: true,
	}
	for sev, want := range cases {
		if got := sev.Elevated(); got != want {
			t.Fatalf("%s: elevated = %v, want %v", sev, got, want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if s, ok := ParseSeverity("critical"); !ok || s != SeverityCritical {
		t.Fatalf("expected critical to parse, got %q ok=%v", s, ok)
	}
	if _, ok := ParseSeverity("Critical"); ok {
		t.Fatal("parsing is exact; mixed case should not match")
	}
	if _, ok := ParseSeverity(""); ok {
		t.Fatal("empty severity should not parse")
	}
}

func TestParseIOCType(t *testing.T) {
	for _, typ := range IOCTypes {
		if got, ok := ParseIOCType(string(typ)); !ok || got != typ {
			t.Fatalf("expected %s to round-trip, got %q ok=%v", typ, got, ok)
		}
	}
	if _, ok := ParseIOCType("mac_address"); ok {
		t.Fatal("unknown ioc type should not parse")
	}
}
