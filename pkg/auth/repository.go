package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations report failures as apperror kinds: Duplicate on an email
// uniqueness conflict, NotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, user User) error
}
