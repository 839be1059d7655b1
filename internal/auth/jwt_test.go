package auth

import (
	"card-rewards/internal/config"
	"card-rewards/internal/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *TokenService {
	return NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: ttl})
}

func TestTokenService_RoundTrip(t *testing.T) {
	s := newTestService(time.Hour)

	token, err := s.GenerateToken(42, domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenService_Expired(t *testing.T) {
	s := newTestService(time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.GenerateToken(1, domain.RoleUser)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(1, domain.RoleUser)
	require.NoError(t, err)

	other := NewTokenService(config.Config{JWTSecret: "other", JWTExpiresIn: time.Hour})
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsUnknownRole(t *testing.T) {
	s := newTestService(time.Hour)

	token, err := s.GenerateToken(1, domain.Role("root"))
	require.NoError(t, err)

	_, err = s.ParseToken(token)
	assert.EqualError(t, err, "invalid role")
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "s3cret"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
