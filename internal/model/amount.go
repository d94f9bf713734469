package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Points are whole numbers of arbitrary size; fractional values are rejected at the boundary.

// ParseAmount parses a strictly positive whole amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := parseWhole(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return amount, nil
}

// ParseDelta parses a signed, non-zero whole amount.
func ParseDelta(s string) (decimal.Decimal, error) {
	delta, err := parseWhole(s)
	if err != nil {
		return decimal.Zero, err
	}
	if delta.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: delta must not be zero", ErrInvalidAmount)
	}
	return delta, nil
}

func parseWhole(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("%w: points are whole numbers", ErrInvalidAmount)
	}
	return d.Truncate(0), nil
}
