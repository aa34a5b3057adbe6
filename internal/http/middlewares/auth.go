package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const usernameKey = "username"

// Auth recovers the username from the Authorization header. A missing,
// malformed or expired token gets the same not-found response as any other
// failure, so the auth layer leaks nothing about why.
func Auth(verify func(token string) (string, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if token == "" {
				return echo.NewHTTPError(http.StatusNotFound, "not found")
			}

			username, err := verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "not found")
			}

			c.Set(usernameKey, username)
			return next(c)
		}
	}
}

// Username returns the identity the Auth middleware stored on the request.
func Username(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}
