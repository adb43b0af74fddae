package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	userRepo     *mockRepo.MockUserRepository
	cartRepo     *mockRepo.MockCartRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userMocks) {
	m := &userMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	service := NewUserService(UserServiceParams{
		UserRepo:     m.userRepo,
		CartRepo:     m.cartRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
	})

	return service, m
}

func TestUserService_Signup_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("hunter2hunter2").
		Return("$2a$12$hash", nil)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.Equal(t, "$2a$12$hash", user.PasswordHash)
		}).
		Return(nil)
	m.cartRepo.EXPECT().
		EnsureCart(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.Cart{ID: uuid.New()}, nil)
	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), "customer").
		Return("access-token", "refresh-token", nil)

	tokens, err := service.Signup(ctx, &usecase.SignupInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, "amina@example.com", tokens.User.Email)
}

func TestUserService_Signup_InvalidEmail(t *testing.T) {
	service, _ := newUserService(t)

	tokens, err := service.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Amina",
		Email:    "not-an-email",
		Password: "hunter2hunter2",
	})
	assert.Nil(t, tokens)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Signup_ShortPassword(t *testing.T) {
	service, _ := newUserService(t)

	tokens, err := service.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "short",
	})
	assert.Nil(t, tokens)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("hunter2hunter2").
		Return("$2a$12$hash", nil)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	tokens, err := service.Signup(ctx, &usecase.SignupInput{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "hunter2hunter2",
	})
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "amina@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         entity.RoleCustomer,
	}

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "amina@example.com").
		Return(user, nil)
	m.hasher.EXPECT().
		Check("hunter2hunter2", "$2a$12$hash").
		Return(true)
	m.tokenService.EXPECT().
		GenerateTokens(user.ID, "customer").
		Return("access-token", "refresh-token", nil)

	tokens, err := service.Login(ctx, "amina@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user, tokens.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	tokens, err := service.Login(ctx, "ghost@example.com", "whatever123")
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindUserByEmail(ctx, "amina@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$12$hash"}, nil)
	m.hasher.EXPECT().
		Check("wrong-password", "$2a$12$hash").
		Return(false)

	tokens, err := service.Login(ctx, "amina@example.com", "wrong-password")
	assert.Nil(t, tokens)
	// Identical to the unknown-email error so accounts cannot be enumerated.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Amina"}

	m.userRepo.EXPECT().
		FindUserByID(ctx, user.ID).
		Return(user, nil)

	got, err := service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}
