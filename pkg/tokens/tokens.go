package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrRevokedToken = errors.New("token has been revoked")
	ErrMissingToken = errors.New("missing token")
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RevocationList is an optional server-side token blacklist. Verification stays
// stateless without one; with one, revoked token IDs are rejected until their
// natural expiry.
type RevocationList interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// Service issues and verifies signed bearer tokens. The secret and TTL are
// injected at construction, never read from ambient state.
type Service struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationList // nil disables the revocation check
}

func NewService(secret string, ttl time.Duration, revoked RevocationList) *Service {
	return &Service{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
	}
}

// Issue mints an HMAC-signed token embedding the user ID, expiring ttl from now.
func (s *Service) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user ID.
func (s *Service) Verify(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("revocation check: %w", err)
		}
		if revoked {
			return uuid.Nil, ErrRevokedToken
		}
	}

	return userID, nil
}

// Revoke blacklists the token's ID for its remaining lifetime. A no-op when no
// revocation list is configured.
func (s *Service) Revoke(ctx context.Context, tokenString string) error {
	if s.revoked == nil {
		return nil
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}

	return s.revoked.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractToken pulls the token value from an Authorization header, tolerating
// both "Bearer <token>" and a raw token.
func ExtractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return authHeader
}
