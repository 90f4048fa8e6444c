package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

var (
	ErrSecretNotSet = errors.New("JWT secret not set")
	ErrMissingToken = errors.New("missing or invalid Authorization header")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("token lacks the required role")
)

// RoleAdmin is required for operational endpoints such as resizing the audit
// worker pool. Plain tokens may still write domain records.
const RoleAdmin = "admin"

// SetSecret sets the JWT secret key (e.g., from config)
func SetSecret(secret string) {
	JWTSecret = []byte(secret)
}

// Claims represents the JWT payload
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for subject, valid for ttl.
func GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(JWTSecret) == 0 {
		return "", ErrSecretNotSet
	}
	if subject == "" {
		return "", errors.New("token subject is required")
	}

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a JWT string
func ValidateToken(tokenStr string) (*Claims, error) {
	if len(JWTSecret) == 0 {
		return nil, ErrSecretNotSet
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
