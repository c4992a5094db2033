package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// Generator issues and verifies HS256 bearer tokens. Tokens are stateless:
// the server keeps no session table, so possession of an unexpired,
// correctly-signed token is the only authorization evidence.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Generate signs a claim set binding the token to userID. Expiry is fixed at
// the configured TTL from issuance; there is no revocation mechanism.
func (g *Generator) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify checks signature, algorithm, issuer and expiry, and returns the
// subject user id. Expired tokens are reported distinctly from malformed or
// tampered ones.
func (g *Generator) Verify(tokenStr string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, apperror.NewTokenExpired()
		}
		return uuid.Nil, apperror.NewInvalidToken()
	}
	if !token.Valid {
		return uuid.Nil, apperror.NewInvalidToken()
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return uuid.Nil, apperror.NewInvalidToken()
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperror.NewInvalidToken()
	}
	return userID, nil
}
