package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	g := NewGenerator("test-secret", "task-manager", 24*time.Hour)
	userID := uuid.New()

	token, err := g.Generate(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := g.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerifyExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already past its expiry.
	g := NewGenerator("test-secret", "task-manager", -time.Minute)
	token, err := g.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = g.Verify(token)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.TokenExpired))
}

func TestVerifyTamperedSignature(t *testing.T) {
	g := NewGenerator("test-secret", "task-manager", 24*time.Hour)
	token, err := g.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	// Flip a byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = g.Verify(tampered)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.InvalidToken))
}

func TestVerifyWrongSecret(t *testing.T) {
	issued := NewGenerator("secret-one", "task-manager", 24*time.Hour)
	token, err := issued.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	verifier := NewGenerator("secret-two", "task-manager", 24*time.Hour)
	_, err = verifier.Verify(token)
	require.True(t, apperror.IsKind(err, apperror.InvalidToken))
}

func TestVerifyWrongIssuer(t *testing.T) {
	issued := NewGenerator("test-secret", "other-service", 24*time.Hour)
	token, err := issued.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	verifier := NewGenerator("test-secret", "task-manager", 24*time.Hour)
	_, err = verifier.Verify(token)
	require.True(t, apperror.IsKind(err, apperror.InvalidToken))
}

func TestVerifyMalformedToken(t *testing.T) {
	g := NewGenerator("test-secret", "task-manager", 24*time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := g.Verify(token)
		require.True(t, apperror.IsKind(err, apperror.InvalidToken), "token %q", token)
	}
}

func TestVerifyNonUUIDSubject(t *testing.T) {
	// A correctly signed token whose subject is not a UUID must be rejected,
	// not passed through to a user lookup.
	now := time.Now().UTC()
	claims := jwtlib.RegisteredClaims{
		Issuer:    "task-manager",
		Subject:   "not-a-uuid",
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	g := NewGenerator("test-secret", "task-manager", 24*time.Hour)
	_, err = g.Verify(token)
	require.True(t, apperror.IsKind(err, apperror.InvalidToken))
}
