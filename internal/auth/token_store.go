package auth

import (
	"context"
	"errors"
	"time"

	"gestionusuarios/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// ErrRefreshTokenNotFound is returned when a refresh token was revoked, expired
// or never issued.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps issued refresh tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

type refreshTokenData struct {
	Email string `json:"email"`
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID, email string, ttl time.Duration) error {
	return s.cache.SetJSON(ctx, refreshTokenKeyPrefix+tokenID, refreshTokenData{Email: email}, ttl)
}

// GetRefreshToken returns the email the refresh token was issued to.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, error) {
	var data refreshTokenData
	if !s.cache.GetJSON(ctx, refreshTokenKeyPrefix+tokenID, &data) || data.Email == "" {
		return "", ErrRefreshTokenNotFound
	}
	return data.Email, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
