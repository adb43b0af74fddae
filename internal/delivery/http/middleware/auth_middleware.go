package middleware

import (
	"strings"

	"pawmart/config"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the authenticated Actor is
// stored under.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and resolves the caller into
// an Actor for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("Failed to parse token claims")
		}

		tokenType, _ := claims["type"].(string)
		if tokenType != "access" {
			return domainerrors.ErrUnauthorized.WithDetails("Not an access token")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid user ID format in token")
		}

		roleStr, _ := claims["role"].(string)
		role := entity.Role(roleStr)
		if !role.Valid() {
			return domainerrors.ErrUnauthorized.WithDetails("Role missing from token")
		}

		c.Set(actorContextKey, usecase.Actor{UserID: userID, Role: role})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor holds a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if actor.Role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("require '" + string(requiredRole) + "' role")
			}

			return next(c)
		}
	}
}

// ActorFromContext extracts the authenticated Actor placed by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}
