package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	middleware := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/check-out", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	middleware.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_BusinessError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrEmptyCart)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusBadRequest, body.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMPTY_CART", body.Error.Code)
}

func TestErrorMiddleware_WrappedBusinessError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrNotFound, "get order")

	rec, body := handleError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_InsufficientStock(t *testing.T) {
	stockErr := domainerrors.NewInsufficientStockError("Cat Tree")

	rec, body := handleError(t, stockErr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Error.Code)
	assert.Contains(t, body.Message, "Cat Tree")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Not Found", body.Message)
}

func TestErrorMiddleware_UnknownErrorBecomes500(t *testing.T) {
	rec, body := handleError(t, errors.New("driver: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// Driver details never leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_CommittedResponseLeftAlone(t *testing.T) {
	middleware := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.NoContent(http.StatusOK))

	middleware.HandleHTTPError(domainerrors.ErrEmptyCart, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
