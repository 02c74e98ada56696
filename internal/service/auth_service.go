package service

import (
	"context"
	"fmt"
	"strings"

	"gestionusuarios/internal/auth"
	apperrors "gestionusuarios/internal/errors"
)

// Operator is the single account allowed to modify data.
type Operator struct {
	Email        string
	PasswordHash string
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	operator   Operator
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(operator Operator, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		operator:   operator,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login authenticates the operator and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.operator.Email) ||
		!auth.CheckPassword(s.operator.PasswordHash, password) {
		return "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(s.operator.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(s.operator.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, s.operator.Email, s.jwtService.RefreshTTL()); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedEmail, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
