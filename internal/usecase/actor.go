// Package usecase defines the application's use case interfaces. The
// delivery layer depends on these, the impl subpackage provides them.
package usecase

import (
	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller identity threaded through every
// operation that needs an authorization decision. It is resolved once at
// the auth boundary from the access token.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}
