package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_AccessToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour)

	token, err := svc.GenerateAccessToken("admin@usuarios.local")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@usuarios.local", claims.Email)
	assert.Empty(t, claims.ID)

	_, err = svc.ExtractTokenID(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour)

	tokenID, token, err := svc.GenerateRefreshToken("admin@usuarios.local")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
	assert.Equal(t, 24*time.Hour, svc.RefreshTTL())
}

func TestJWTService_RejectsForeignOrExpiredTokens(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, time.Hour)
	other := NewJWTService("other", time.Hour, time.Hour)

	token, err := other.GenerateAccessToken("x@example.com")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	expired := NewJWTService("secret", -time.Minute, time.Hour)
	token, err = expired.GenerateAccessToken("x@example.com")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestTokenStore_WithoutRedis(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := t.Context()

	require.NoError(t, store.StoreRefreshToken(ctx, "id", "a@b.c", time.Minute))
	_, err := store.GetRefreshToken(ctx, "id")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
	assert.NoError(t, store.DeleteRefreshToken(ctx, "id"))
}
