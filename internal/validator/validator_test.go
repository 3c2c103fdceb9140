package validator

import (
	"errors"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"alex@example.com", "a.b+c@sub.domain.org"} {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("%q rejected: %v", email, err)
		}
	}
	for _, email := range []string{"", "plain", "a@b", "two words@example.com", "@example.com"} {
		if err := ValidateEmail(email); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("%q accepted", email)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"alex", "Poly_Raiders", "ab"} {
		if err := ValidateName(name); err != nil {
			t.Fatalf("%q rejected: %v", name, err)
		}
	}
	for _, name := range []string{"", "x", "has space", "bad!chars", "this_name_is_way_too_long_for_the_limit"} {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q accepted", name)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePassword("short"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("short password accepted")
	}
}

func TestValidateAge(t *testing.T) {
	for _, age := range []int{1, 12, 120} {
		if err := ValidateAge(age); err != nil {
			t.Fatalf("age %d rejected: %v", age, err)
		}
	}
	for _, age := range []int{0, -3, 121} {
		if err := ValidateAge(age); !errors.Is(err, ErrInvalidAge) {
			t.Fatalf("age %d accepted", age)
		}
	}
}
