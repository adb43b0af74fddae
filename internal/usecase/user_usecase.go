package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupInput carries a registration request. New accounts always start
// with the customer role.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AuthTokens is the result of a successful signup or login.
type AuthTokens struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// UserUsecase defines the interface for account use cases
type UserUsecase interface {
	// Signup registers a new customer account, creates its cart and issues
	// a token pair.
	Signup(ctx context.Context, input *SignupInput) (*AuthTokens, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)

	// GetProfile retrieves the account behind the token.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
