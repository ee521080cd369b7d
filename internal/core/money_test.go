package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.01", 1, true},
		{".5", 50, true},
		{"12.344", 1234, true},
		{"12.345", 1235, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.3.4", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
	}
	for _, tc := range cases {
		cents, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: expected ok, got %v", tc.in, err)
			}
			if cents != tc.cents {
				t.Fatalf("%q: expected %d, got %d", tc.in, tc.cents, cents)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1234, "$12.34"},
		{100000, "$1000.00"},
		{-350, "-$3.50"},
	}
	for _, tc := range cases {
		if got := FormatUSD(Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("%d: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}
