package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100", "100.00000000"},
			{"0.6", "0.60000000"},
			{"0.00000001", "0.00000001"},
			{" 1.5 ", "1.50000000"},
			{"1.000000000", "1.00000000"},
			{"999999999999.99999999", "999999999999.99999999"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				value, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(value))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"-1", errs.ErrInvalidAmount, "Negative amount"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"0", errs.ErrInvalidAmount, "Zero"},
			{"0.00", errs.ErrInvalidAmount, "Zero with decimals"},
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"1e3", errs.ErrInvalidAmount, "Exponent notation"},
			{"1.000000001", errs.ErrInvalidAmount, "Too many decimal places"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"1000000000000", errs.ErrAmountOverflow, "Too many integer digits"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
				assert.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})
}

func TestDecimalSumIsExact(t *testing.T) {
	sum := Zero
	for i := 0; i < 10; i++ {
		v, err := ParseAmount("0.1")
		require.NoError(t, err)
		sum = sum.Add(v)
	}

	assert.True(t, sum.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "1.00000000", FormatAmount(sum))
}

func TestParseStoredAmount(t *testing.T) {
	value, err := ParseStoredAmount("0")
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	value, err = ParseStoredAmount("")
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	_, err = ParseStoredAmount("-0.5")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestSubtractClamped(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected string
	}{
		{"1", "0.4", "0.60000000"},
		{"0.5", "0.5", "0.00000000"},
		{"0.5", "2", "0.00000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.a+"-"+tc.b, func(t *testing.T) {
			result := SubtractClamped(decimal.RequireFromString(tc.a), decimal.RequireFromString(tc.b))
			assert.Equal(t, tc.expected, FormatAmount(result))
		})
	}
}
