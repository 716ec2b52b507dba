package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid amount", errs.ErrInvalidAmount, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: abc", errs.ErrInvalidAmount), http.StatusBadRequest},
		{"deadline passed", errs.ErrDeadlinePassed, http.StatusBadRequest},
		{"already withdrawn", errs.ErrAlreadyWithdrawn, http.StatusBadRequest},
		{"funding error", errs.NewFundingError("withdraw", 1, "u", "", "", errs.ErrGoalNotMet), http.StatusBadRequest},
		{"not found", errs.ErrProjectNotFound, http.StatusNotFound},
		{"not creator", errs.ErrNotProjectCreator, http.StatusForbidden},
		{"unauthorized", fmt.Errorf("%w: expired", errs.ErrUnauthorized), http.StatusUnauthorized},
		{"shutting down", errs.ErrUnavailable, http.StatusServiceUnavailable},
		{"concurrent update", errs.ErrConcurrentUpdate, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		value   string
		want    uint64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tc.value}}

			id, err := pathID(c, "id")
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
