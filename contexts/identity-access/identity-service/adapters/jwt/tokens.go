package jwtadapter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domainerrors "lexicon/contexts/identity-access/identity-service/domain/errors"
	"lexicon/contexts/identity-access/identity-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the single canonical access token lifetime.
const DefaultTTL = 30 * time.Minute

const tokenTypeBearer = "bearer"

// Signer implements ports.TokenService with HS256 JWTs.
// The key is fixed for the life of the process.
type Signer struct {
	key []byte
}

func NewSigner(secret string) (*Signer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token signing secret is required")
	}
	return &Signer{key: []byte(secret)}, nil
}

func (s *Signer) Issue(username string, ttl time.Duration, now time.Time) (ports.IssuedToken, error) {
	if strings.TrimSpace(username) == "" {
		return ports.IssuedToken{}, errors.New("token subject is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	issuedAt := now.UTC()
	expiresAt := issuedAt.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("sign access token: %w", err)
	}
	return ports.IssuedToken{
		AccessToken: signed,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Resolve verifies signature and expiry against now and returns the subject.
// Every failure collapses into ErrInvalidOrExpiredToken.
func (s *Signer) Resolve(token string, now time.Time) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domainerrors.ErrInvalidOrExpiredToken
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now.UTC() }),
	)
	if err != nil || !parsed.Valid {
		return "", domainerrors.ErrInvalidOrExpiredToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", domainerrors.ErrInvalidOrExpiredToken
	}
	return claims.Subject, nil
}
