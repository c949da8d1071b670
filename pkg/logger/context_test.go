package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithContextRoundTrip(t *testing.T) {
	l := zap.NewNop()
	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestFromContext_Fallback(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromEcho_Fallback(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, FromEcho(c))
}

func TestMiddlewareThreadsLoggerThroughRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromCtx *zap.Logger
	handler := Middleware()(func(c echo.Context) error {
		fromEcho = FromEcho(c)
		fromCtx = FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	require.NotNil(t, fromEcho)
	assert.Same(t, fromEcho, fromCtx)
}
