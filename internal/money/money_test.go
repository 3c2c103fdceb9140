package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input   string
		want    Money
		wantErr error
	}{
		{"100", FromMajor(100), nil},
		{"12.34", FromMinor(1234), nil},
		{" 7.5 ", FromMinor(750), nil},
		{"-3.50", FromMinor(-350), nil},
		{"0", 0, nil},
		{"", 0, ErrInvalidAmount},
		{"abc", 0, ErrInvalidAmount},
		{"1.234", 0, ErrTooManyDecimals},
		{"1.100", 0, ErrTooManyDecimals},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Parse(%q): expected %v, got %v", tc.input, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.input, got.Minor(), tc.want.Minor())
		}
	}
}

func TestString(t *testing.T) {
	if got := FromMinor(1234).String(); got != "12.34" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := FromMinor(-5).String(); got != "-0.05" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := Money(0).String(); got != "0.00" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := FromMinor(1050)
	b := FromMinor(50)
	if got := a.Add(b); got != FromMinor(1100) {
		t.Fatalf("Add = %d", got.Minor())
	}
	if got := a.Sub(b); got != FromMinor(1000) {
		t.Fatalf("Sub = %d", got.Minor())
	}
	if !b.LessThan(a) || a.LessThan(b) {
		t.Fatalf("LessThan ordering wrong")
	}
	if a.LessThan(a) {
		t.Fatalf("LessThan must be strict")
	}
	if !a.IsPositive() || FromMinor(-1).IsPositive() || Money(0).IsPositive() {
		t.Fatalf("IsPositive wrong")
	}
	if !FromMinor(-1).IsNegative() || a.IsNegative() {
		t.Fatalf("IsNegative wrong")
	}
}
