package auth

import (
	"context"

	"github.com/google/uuid"
)

// TokenService abstracts bearer-token issuance and verification (e.g. JWT).
// It allows use cases to stay framework-agnostic.
type TokenService interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
