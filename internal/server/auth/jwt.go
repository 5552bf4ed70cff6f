// Package auth contains the credential primitives used by the user service:
// password hashing and JWT issuance/verification.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
)

// TokenValidity is the lifetime of an issued token.
const TokenValidity = time.Hour

// Claims is the token payload: the user id plus the registered exp and iat.
type Claims struct {
	jwt.RegisteredClaims
	ID string `json:"id"`
}

// GenerateToken signs an HS256 token carrying userID that expires
// validityDuration after issuance.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrorMisconfigured
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		ID: userID,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString and returns the user id it carries.
func ParseToken(tokenString string, secretKey []byte) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrorMisconfigured
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuedAt())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrorInvalidToken
	}

	if !token.Valid || claims.ID == "" {
		return "", common.ErrorInvalidToken
	}

	return claims.ID, nil
}
