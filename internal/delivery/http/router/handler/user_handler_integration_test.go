package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pawmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Integration(t *testing.T) {
	// Create Echo context
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Call HealthCheck
	err := HealthCheck(c)
	assert.NoError(t, err)

	// Check response envelope
	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"status":"ok"`)
	assert.Contains(t, responseBody, "Service is healthy")
}

func TestUserHandler_GetProfile_NoActor(t *testing.T) {
	handler := NewUserHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Without the Authenticate middleware no actor is set, so the
	// handler must bail out before touching the usecase.
	err := handler.GetProfile(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
