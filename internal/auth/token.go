package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("the token is invalid or has expired")
)

// Issuer creates and verifies signed bearer tokens.
type Issuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewIssuer returns an Issuer signing with the HMAC secret.
func NewIssuer(secret string, lifetime time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue creates a signed token for the user.
//
// It returns the token and the time it expires at.
func (i *Issuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().In(time.UTC)
	expiresAt := now.Add(i.lifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a token, returning the user ID it was issued for.
func (i *Issuer) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
