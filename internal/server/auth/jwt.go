// Package auth holds the authentication core: password hashing, JWT
// issuance/validation and resolution of the caller's identity.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and decodes HS256 access tokens. The secret is given
// once at construction and held for the life of the process.
type TokenService struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

func NewTokenService(secretKey []byte, validityDuration time.Duration) *TokenService {
	return &TokenService{
		secretKey:        secretKey,
		validityDuration: validityDuration,
		now:              time.Now,
	}
}

// Issue returns a signed token with sub=userID, iat and exp.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validityDuration)),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode verifies tokenString and returns its subject. Every failure
// (signature, structure, algorithm, expiry, missing or non-numeric sub)
// wraps common.ErrInvalidToken.
func (s *TokenService) Decode(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return 0, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed subject", common.ErrInvalidToken)
	}

	return userID, nil
}
