package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	u, err := NewUser(" u1 ", " Ada@Example.COM ", "Ada", "Lovelace", "", now)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "Ada Lovelace", u.DisplayName())
	assert.False(t, u.HasPassword())

	_, err = NewUser("", "a@b.c", "", "", "", now)
	assert.ErrorIs(t, err, errs.ErrInvalidID)

	anon, err := NewUser("u2", "x@y.z", "", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, "x@y.z", anon.DisplayName())
}

func TestSessionExpired(t *testing.T) {
	expire := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &Session{SID: "s", UserID: "u", Expire: expire}

	assert.False(t, s.Expired(expire.Add(-time.Second)))
	assert.True(t, s.Expired(expire))
}
