package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ToMinorUnits converts a major-unit amount to integer gateway units (x100).
// Amounts with more than two fractional digits are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	scaled, err := amount.Mul(decimal.Hundred)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAmountPrecision, err)
	}
	if !scaled.IsInt() {
		return 0, fmt.Errorf("%w: %s", ErrAmountPrecision, amount)
	}
	whole, _, ok := scaled.Int64(0)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAmountPrecision, amount)
	}
	return whole, nil
}

// FromMinorUnits converts integer gateway units back to a major-unit amount.
func FromMinorUnits(amount int64) (decimal.Decimal, error) {
	return decimal.New(amount, 2)
}
