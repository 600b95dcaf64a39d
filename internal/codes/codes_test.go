package codes

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mss", "MSS"},
		{"MSS", "MSS"},
		{"  mini show -- 2026  ", "MINISHOW-2026"},
		{"--edge--", "EDGE"},
		{"a_b.c", "ABC"},
		{"", "ENTRY"},
		{"!!!", "ENTRY"},
		{"VERY-LONG-PREFIX-THAT-GOES-ON-AND-ON", "VERY-LONG-PREFIX-THAT-GO"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"mss", "mini show 2026", "", "--x--", "VERY-LONG-PREFIX-THAT-GOES-ON-AND-ON"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNextSequential(t *testing.T) {
	got := Next([]string{"MSS-000001", "MSS-000002"}, "MSS", 6)
	if got != "MSS-000003" {
		t.Fatalf("expected MSS-000003, got %q", got)
	}
}

func TestNextIgnoresOtherPrefixes(t *testing.T) {
	existing := []string{"MSS-000009", "OTHER-000050", "MSS-EXTRA-01", "MSS-"}
	if got := Next(existing, "MSS", 6); got != "MSS-000010" {
		t.Fatalf("expected MSS-000010, got %q", got)
	}
}

func TestNextEmptyStore(t *testing.T) {
	if got := Next(nil, "mss", 6); got != "MSS-000001" {
		t.Fatalf("expected MSS-000001, got %q", got)
	}
}

func TestFormatWidth(t *testing.T) {
	if got := Format("MSS", 7, 4); got != "MSS-0007" {
		t.Fatalf("expected MSS-0007, got %q", got)
	}
	// Sequences wider than the configured padding print in full.
	if got := Format("MSS", 1234567, 6); got != "MSS-1234567" {
		t.Fatalf("expected MSS-1234567, got %q", got)
	}
}

func TestMaxSequence(t *testing.T) {
	existing := []string{"MSS-000001", "MSS-000042", "MSS-7", "junk"}
	if got := MaxSequence(existing, "MSS"); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := MaxSequence(nil, "MSS"); got != 0 {
		t.Fatalf("expected 0 for empty store, got %d", got)
	}
}
