package provider

import "testing"

func TestUpstreamErrorFormat(t *testing.T) {
	err := upstreamErr("coingecko", 429, "rate limited")
	if err.Error() != "coingecko error 429: rate limited" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	err = upstreamErr("news", 0, "connection refused")
	if err.Error() != "news error: connection refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		in       any
		expected float64
	}{
		{float64(1.5), 1.5},
		{int(3), 3},
		{"42.5", 42.5},
		{" 7 ", 7},
		{"junk", 0},
		{nil, 0},
	}
	for _, tc := range tests {
		if got := asFloat(tc.in); got != tc.expected {
			t.Fatalf("asFloat(%v) expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}
