package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// MoneyUtils contains utility functions for handling monetary values.
// All arithmetic goes through decimal.Decimal, never through float64.

const (
	// MaxDecimalPlaces defines the maximum number of fractional digits allowed for money amounts
	MaxDecimalPlaces = 8

	// MaxPrecision is the total number of significant digits a persisted amount can hold
	MaxPrecision = 20

	// MaxIntegerDigits is the number of digits allowed before the decimal point
	MaxIntegerDigits = MaxPrecision - MaxDecimalPlaces
)

// Zero is the zero amount
var Zero = decimal.Zero

// ParseAmount parses a base-10 decimal string into an amount.
// The value must be strictly positive, have no more than MaxDecimalPlaces
// fractional digits and no more than MaxIntegerDigits integer digits.
// Exponent notation is rejected so that "1e3" can't sneak past the scale check.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.ContainsAny(amount, "eE") {
		return Zero, fmt.Errorf("%w: %q is not a plain decimal", errs.ErrInvalidAmount, amount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	if err := checkScale(value); err != nil {
		return Zero, err
	}
	return value, nil
}

// ParseStoredAmount parses an amount read back from storage. Zero is allowed.
func ParseStoredAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Zero, nil
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Zero, fmt.Errorf("%w: stored amount %q", errs.ErrInvalidAmount, amount)
	}
	if value.IsNegative() {
		return Zero, fmt.Errorf("%w: stored amount %q is negative", errs.ErrInvalidAmount, amount)
	}
	return value, nil
}

func checkScale(value decimal.Decimal) error {
	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	integerDigits := len(value.Truncate(0).Abs().String())
	if integerDigits > MaxIntegerDigits {
		return fmt.Errorf("%w: maximum %d integer digits allowed", errs.ErrAmountOverflow, MaxIntegerDigits)
	}
	return nil
}

// FormatAmount renders an amount with exactly MaxDecimalPlaces fractional digits
// For example:
// - 1 becomes "1.00000000"
// - 0.6 becomes "0.60000000"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// SubtractClamped returns a - b, floored at zero
func SubtractClamped(a, b decimal.Decimal) decimal.Decimal {
	result := a.Sub(b)
	if result.IsNegative() {
		return Zero
	}
	return result
}
