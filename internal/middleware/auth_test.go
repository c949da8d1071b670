package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/model"
	"parttimejobs/pkg/config"
	"parttimejobs/pkg/jwtutil"
	"parttimejobs/prometheus"
)

func testJWT() *jwtutil.JWTUtil {
	return jwtutil.NewJWTUtil(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		Issuer:          "parttimejobs-api",
		Audience:        "parttimejobs-web",
		ExpirationHours: 1,
	})
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	mw := JWT(testJWT(), prometheus.NewHTTPMetrics("test_mw_missing"))
	rec, reached := invoke(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Missing authorization token")
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	mw := JWT(testJWT(), prometheus.NewHTTPMetrics("test_mw_malformed"))
	rec, reached := invoke(t, mw, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Invalid authorization header")
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	mw := JWT(testJWT(), prometheus.NewHTTPMetrics("test_mw_invalid"))
	rec, reached := invoke(t, mw, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestJWTMiddleware_ValidTokenSetsClaims(t *testing.T) {
	jwt := testJWT()
	token, _, err := jwt.GenerateToken("anna@example.com", 7, model.RoleStudent)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var claims *jwtutil.UserClaims
	handler := JWT(jwt, prometheus.NewHTTPMetrics("test_mw_valid"))(func(c echo.Context) error {
		claims = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()

	run := func(role string, allowed ...string) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set(claimsKey, &jwtutil.UserClaims{UserID: 7, Role: role})
		}
		reached := false
		handler := RequireRoles(allowed...)(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return rec, reached
	}

	rec, reached := run(model.RoleAdmin, model.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)

	rec, reached = run(model.RoleStudent, model.RoleEmployer, model.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "You do not have permission")

	rec, reached = run("", model.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestClaimsFrom_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, ClaimsFrom(c))
}
