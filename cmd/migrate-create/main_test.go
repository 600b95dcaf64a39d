package main

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"add_sponsor_tier", "add_sponsor_tier"},
		{"Add Sponsor Tier", "add_sponsor_tier"},
		{"add-sponsor-tier", "add_sponsor_tier"},
		{"  add sponsor!! tier  ", "add_sponsor_tier"},
		{"___", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeName(tc.in); got != tc.want {
			t.Fatalf("normalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
