package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

const sampleHash = "0xD2A4C9F3E1B5A6C7D8E9F0A1B2C3D4E5F6A7B8C9D0E1F2A3B4C5D6E7F8A9B0C1"

func TestNewTransaction(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Demo contribution", func(t *testing.T) {
		tx, err := NewTransaction(1, "u1", "", "0.6", "demo", "ignored", now)

		require.NoError(t, err)
		assert.Equal(t, TypeDemo, tx.Type)
		assert.Equal(t, "0.60000000", FormatAmount(tx.Amount))
		assert.Empty(t, tx.TransactionHash)
		assert.Equal(t, now, tx.CreatedAt)
	})

	t.Run("Real contribution normalizes chain identifiers", func(t *testing.T) {
		tx, err := NewTransaction(1, "", "0xde709f2102306220921060314715629080e2fb77", "1", "real", sampleHash, now)

		require.NoError(t, err)
		assert.Equal(t, TypeReal, tx.Type)
		assert.Equal(t, "0xde709f2102306220921060314715629080e2fB77", tx.DonorWalletAddress)
		assert.Equal(t, strings.ToLower(sampleHash), tx.TransactionHash)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name      string
			projectID uint64
			amount    string
			txType    string
			hash      string
			err       error
		}{
			{"negative amount", 1, "-1", "demo", "", errs.ErrInvalidAmount},
			{"non-numeric amount", 1, "abc", "demo", "", errs.ErrInvalidAmount},
			{"zero amount", 1, "0", "demo", "", errs.ErrInvalidAmount},
			{"unknown type", 1, "1", "crypto", "", errs.ErrInvalidTransactionType},
			{"real without hash", 1, "1", "real", "  ", errs.ErrMissingTransactionHash},
			{"missing project", 0, "1", "demo", "", errs.ErrInvalidID},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewTransaction(tc.projectID, "u1", "", tc.amount, tc.txType, tc.hash, now)
				assert.ErrorIs(t, err, tc.err)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.Nil(t, tx)
			})
		}
	})
}

func TestNormalizeWalletAddress(t *testing.T) {
	lower := NormalizeWalletAddress("0xde709f2102306220921060314715629080e2fb77")
	upper := NormalizeWalletAddress("0xDE709F2102306220921060314715629080E2FB77")

	assert.Equal(t, lower, upper)
	assert.Equal(t, "not-an-address", NormalizeWalletAddress(" not-an-address "))
}

func TestNormalizeTransactionHash(t *testing.T) {
	assert.Equal(t, strings.ToLower(sampleHash), NormalizeTransactionHash(sampleHash))
	assert.Equal(t, "opaque-id", NormalizeTransactionHash(" opaque-id "))
	assert.Equal(t, "0x1234", NormalizeTransactionHash("0x1234"))
}

func TestRefundRequest(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	project := &Project{ID: 9, CreatorID: "creator-1"}
	txID := uint64(3)

	r, err := NewRefundRequest(project, "backer-1", &txID, "0.5", now)
	require.NoError(t, err)
	assert.Equal(t, "creator-1", r.CreatorID)
	assert.False(t, r.Approved)

	contribution, err := NewTransaction(9, "backer-1", "", "0.5", "demo", "", now)
	require.NoError(t, err)
	assert.NoError(t, r.CheckLinkedTransaction(contribution, Zero))
	assert.ErrorIs(t, r.CheckLinkedTransaction(contribution, decimal.RequireFromString("0.5")), errs.ErrRefundExceedsContribution,
		"requests already filed count against the contribution")
	assert.ErrorIs(t, r.CheckLinkedTransaction(contribution, decimal.RequireFromString("0.00000001")), errs.ErrRefundExceedsContribution)

	smaller, err := NewTransaction(9, "backer-1", "", "0.4", "demo", "", now)
	require.NoError(t, err)
	assert.ErrorIs(t, r.CheckLinkedTransaction(smaller, Zero), errs.ErrRefundExceedsContribution)

	otherProject, err := NewTransaction(10, "backer-1", "", "5", "demo", "", now)
	require.NoError(t, err)
	assert.ErrorIs(t, r.CheckLinkedTransaction(otherProject, Zero), errs.ErrTransactionNotFound)

	otherBacker, err := NewTransaction(9, "backer-2", "", "5", "demo", "", now)
	require.NoError(t, err)
	assert.ErrorIs(t, r.CheckLinkedTransaction(otherBacker, Zero), errs.ErrTransactionNotFound)

	assert.NoError(t, r.CheckApprover("creator-1"))
	assert.ErrorIs(t, r.CheckApprover("backer-1"), errs.ErrNotRefundApprover)

	_, err = NewRefundRequest(project, "backer-1", nil, "-1", now)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}
