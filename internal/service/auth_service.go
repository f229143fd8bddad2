package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// Common auth errors.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountPending       = errors.New("account pending instructor approval")
	ErrAccountBlocked       = errors.New("account blocked")
	ErrSessionAlreadyActive = errors.New("another session is already active, please contact the instructor to reset")
)

// TokenType distinguishes regular user vs admin tokens.
type TokenType string

const (
	TokenTypeUser  TokenType = "user"
	TokenTypeAdmin TokenType = "admin"
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"token_type"`
	Username  string    `json:"username"`
}

// AuthService handles authentication, JWT, and session management.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// CheckPassword compares a stored password against the submitted one.
// Passwords are stored verbatim; this system guards course progress, not
// anything sensitive, and the instructor needs to read passwords back to
// locked-out students over the phone.
func (s *AuthService) CheckPassword(stored, password string) error {
	if stored != password {
		return ErrInvalidCredentials
	}
	return nil
}

// Authorize checks an account's moderation status before issuing a token.
func (s *AuthService) Authorize(account *model.UserAccount) error {
	switch account.Status {
	case model.StatusBlocked:
		return ErrAccountBlocked
	case model.StatusPending:
		return ErrAccountPending
	}
	return nil
}

// GenerateUserToken creates a JWT for a user and registers the session in
// Redis. Returns ErrSessionAlreadyActive if the user is logged in elsewhere.
func (s *AuthService) GenerateUserToken(ctx context.Context, username string) (string, error) {
	sessionKey := config.CacheKey.UserSessionKey(username)

	// Check if an active session exists — reject new login if so.
	existing, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("check session: %w", err)
	}
	if existing != "" {
		return "", ErrSessionAlreadyActive
	}

	jti := uuid.New().String()
	signed, err := s.signToken(username, TokenTypeUser, jti)
	if err != nil {
		return "", err
	}

	// Store session in Redis with same expiry as JWT.
	if err := s.rdb.Set(ctx, sessionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return signed, nil
}

// GenerateAdminToken creates a JWT for an admin. Admin logins are not
// single-device restricted.
func (s *AuthService) GenerateAdminToken(username string) (string, error) {
	return s.signToken(username, TokenTypeAdmin, uuid.New().String())
}

func (s *AuthService) signToken(username string, tokenType TokenType, jti string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: tokenType,
		Username:  username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateUserSession checks that the token's JTI matches the active session in Redis.
func (s *AuthService) ValidateUserSession(ctx context.Context, username, jti string) error {
	sessionKey := config.CacheKey.UserSessionKey(username)
	stored, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errors.New("no active session")
		}
		return fmt.Errorf("check session: %w", err)
	}
	if stored != jti {
		return errors.New("session invalidated")
	}
	return nil
}

// ResetUserSession removes a user's session from Redis, allowing a new login.
func (s *AuthService) ResetUserSession(ctx context.Context, username string) error {
	sessionKey := config.CacheKey.UserSessionKey(username)
	return s.rdb.Del(ctx, sessionKey).Err()
}
