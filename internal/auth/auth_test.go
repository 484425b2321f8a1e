package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", "groupledger", time.Minute, time.Hour)
}

func TestGeneratePair_RoundTrip(t *testing.T) {
	tm := newTestManager()

	pair, err := tm.GeneratePair("u1", "g1", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Minute), pair.ExpiresAt, 2*time.Second)

	acc, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", acc.UserID)
	assert.Equal(t, "g1", acc.GroupID)
	assert.Equal(t, "admin", acc.Role)

	ref, err := tm.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", ref.UserID)
}

func TestParse_RejectsWrongTokenKind(t *testing.T) {
	tm := newTestManager()
	pair, err := tm.GeneratePair("u1", "g1", "user")
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = tm.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsForeignIssuerAndSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("access-secret", "refresh-secret", "someone-else", time.Minute, time.Hour)
	pair, err := other.GeneratePair("u1", "g1", "user")
	require.NoError(t, err)
	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	forged := NewTokenManager("wrong", "wrong", "groupledger", time.Minute, time.Hour)
	pair, err = forged.GeneratePair("u1", "g1", "admin")
	require.NoError(t, err)
	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsExpired(t *testing.T) {
	tm := newTestManager()
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	pair, err := tm.GeneratePair("u1", "g1", "user")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, PasswordMatches(hash, "secret1"))
	assert.False(t, PasswordMatches(hash, "secret2"))
	assert.False(t, PasswordMatches("not-a-hash", "secret1"))

	_, err = HashPassword(strings.Repeat("x", MaxPasswordBytes+1))
	assert.Error(t, err)
}
