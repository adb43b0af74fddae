package impl

import (
	"context"
	"net/mail"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

type userService struct {
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CartRepo     repository.CartRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		cartRepo:     params.CartRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
	}
}

// Signup registers a new customer account and issues a token pair
func (s *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthTokens, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	// Every account gets its cart up front so the cart surface never has
	// to distinguish "no cart yet" from "empty cart".
	if _, err := s.cartRepo.EnsureCart(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to create cart for new user")
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthTokens, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password so accounts cannot be enumerated.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// GetProfile retrieves the account behind the token
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

func (s *userService) issueTokens(user *entity.User) (*usecase.AuthTokens, error) {
	access, refresh, err := s.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
