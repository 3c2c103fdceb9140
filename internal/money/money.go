package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// Money is an exact coin amount in minor units (hundredths). All arithmetic
// stays within two decimal places.
type Money int64

// FromMajor builds a Money from whole coin units.
func FromMajor(units int64) Money {
	return Money(units * 100)
}

// FromMinor builds a Money from minor units.
func FromMinor(minor int64) Money {
	return Money(minor)
}

// Parse reads a decimal string such as "12.34". Inputs with more than two
// decimal digits are rejected rather than rounded.
func Parse(input string) (Money, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if value.Exponent() < -2 {
		return 0, ErrTooManyDecimals
	}
	return Money(value.Shift(2).IntPart()), nil
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) LessThan(other Money) bool {
	return m < other
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) Minor() int64 {
	return int64(m)
}

// String formats the amount with exactly two decimal places, e.g. "12.34".
func (m Money) String() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}
