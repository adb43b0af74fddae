package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the marketplace. Passwords are stored only as
// bcrypt hashes; the plaintext never leaves the auth boundary.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
