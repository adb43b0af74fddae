package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawmart/config"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func runAuthenticate(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()

	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	middleware := NewAuthMiddleware(tokenSvc, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID, "customer")
	require.NoError(t, err)

	c, err := runAuthenticate(t, "Bearer "+accessToken)
	require.NoError(t, err)

	actor, ok := ActorFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, entity.RoleCustomer, actor.Role)
	assert.False(t, actor.IsAdmin())
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	_, err := runAuthenticate(t, "")
	requireUnauthorized(t, err)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	_, err := runAuthenticate(t, "Basic dXNlcjpwYXNz")
	requireUnauthorized(t, err)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	_, err := runAuthenticate(t, "Bearer not-a-jwt")
	requireUnauthorized(t, err)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret and carry
	// type=refresh; neither should pass the access check.
	_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = runAuthenticate(t, "Bearer "+refreshToken)
	requireUnauthorized(t, err)
}

func TestAuthMiddleware_RequireRole_AdminGate(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	middleware := NewAuthMiddleware(tokenSvc, cfg)

	adminToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "admin")
	require.NoError(t, err)
	customerToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "customer")
	require.NoError(t, err)

	e := echo.New()
	chain := middleware.Authenticate(
		middleware.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	require.NoError(t, chain(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/alerts", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec = httptest.NewRecorder()
	err = chain(e.NewContext(req, rec))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
}
