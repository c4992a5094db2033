package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing an account holder. PasswordHash is
// never serialized; responses carry only the public fields.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
