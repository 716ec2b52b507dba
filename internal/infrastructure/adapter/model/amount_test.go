package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

func TestAmount_Scan(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{"text column", "12345678.12345678", "12345678.12345678"},
		{"bytes", []byte("0.50000000"), "0.5"},
		{"empty text", "", "0"},
		{"null", nil, "0"},
		{"float driver value", 1.25, "1.25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, a.Scan(tc.value))
			assert.Equal(t, tc.want, a.Decimal.String())
		})
	}

	t.Run("negative stored amount", func(t *testing.T) {
		var a Amount
		assert.ErrorIs(t, a.Scan("-0.1"), errs.ErrInvalidAmount)
	})

	t.Run("garbage", func(t *testing.T) {
		var a Amount
		assert.Error(t, a.Scan("abc"))
	})
}

func TestAmount_Value(t *testing.T) {
	var a Amount
	require.NoError(t, a.Scan("0.1"))
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, "0.10000000", v)
}
