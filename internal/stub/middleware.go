package stub

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Auth validates the bearer token and injects the viewer's id and admin flag
// into the request context.
func Auth(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, admin, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("userID", userID)
			c.Set("admin", admin)
			return next(c)
		}
	}
}

// RequireAdmin rejects viewers whose token does not carry the admin
// capability. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, _ := c.Get("admin").(bool)
			if !admin {
				return echo.NewHTTPError(http.StatusForbidden, "admin capability required")
			}
			return next(c)
		}
	}
}

// viewerID extracts the authenticated viewer's id injected by Auth.
func viewerID(c echo.Context) (int64, error) {
	id, ok := c.Get("userID").(int64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
