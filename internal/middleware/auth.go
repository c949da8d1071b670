// Package middleware holds the echo middleware specific to the API:
// bearer-token authentication, role guards and request identifiers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"parttimejobs/pkg/jwtutil"
	"parttimejobs/prometheus"
)

const claimsKey = "user_claims"

// JWT validates the Authorization bearer token and stores the parsed
// claims in the echo context. Failures are recorded on the auth error
// counter before the 401 goes out.
func JWT(jwt *jwtutil.JWTUtil, metrics *prometheus.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing authorization token"})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				metrics.RecordAuthError("malformed_header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid authorization header"})
			}

			claims, err := jwt.ValidateToken(token)
			if err != nil {
				metrics.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireRoles restricts a route to the named roles. It must run after JWT.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Missing authorization token"})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"message": "You do not have permission to access this resource"})
		}
	}
}

// ClaimsFrom returns the authenticated user's claims, or nil on
// unauthenticated routes.
func ClaimsFrom(c echo.Context) *jwtutil.UserClaims {
	claims, ok := c.Get(claimsKey).(*jwtutil.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
