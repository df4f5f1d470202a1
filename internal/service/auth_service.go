package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/campustrack/campustrack-backend/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalidated = errors.New("session invalidated")
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	ProfileID uuid.UUID `json:"profile_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// AuthService handles password hashing, JWT issuance, and the Redis-backed
// session registry that makes sign-out effective before token expiry.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a JWT for a profile and registers the session in
// Redis. Signing in again replaces any previous session: the newest device
// wins, earlier tokens stop validating.
func (s *AuthService) GenerateToken(ctx context.Context, profileID uuid.UUID, email, role string) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   profileID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		ProfileID: profileID,
		Email:     email,
		Role:      role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	sessionKey := config.CacheKey.ProfileSessionKey(profileID.String())
	if err := s.rdb.Set(ctx, sessionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
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

// ValidateSession checks that the token's JTI matches the active session in
// Redis. A signed-out or replaced session fails with ErrSessionInvalidated.
func (s *AuthService) ValidateSession(ctx context.Context, profileID uuid.UUID, jti string) error {
	sessionKey := config.CacheKey.ProfileSessionKey(profileID.String())
	stored, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionInvalidated
		}
		return fmt.Errorf("check session: %w", err)
	}
	if stored != jti {
		return ErrSessionInvalidated
	}
	return nil
}

// SignOut removes a profile's session from Redis, invalidating the
// outstanding token.
func (s *AuthService) SignOut(ctx context.Context, profileID uuid.UUID) error {
	sessionKey := config.CacheKey.ProfileSessionKey(profileID.String())
	return s.rdb.Del(ctx, sessionKey).Err()
}
