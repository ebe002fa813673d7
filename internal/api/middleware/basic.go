package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ServiceAccount is one entry of the fixed static-credential table.
type ServiceAccount struct {
	Password string
	Role     string
}

// BasicAuth authenticates requests against a fixed service-account table via
// the Basic scheme. The table is process-wide and read-only after startup;
// it is entirely independent of the persisted user store, so a registered
// user's real password is irrelevant here.
//
// The WWW-Authenticate challenge is set before validation runs, so it
// appears on success and failure responses alike.
func BasicAuth(accounts map[string]ServiceAccount) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Basic")

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed credentials")
			}

			username, password, ok := strings.Cut(string(decoded), ":")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed credentials")
			}

			account, ok := accounts[username]
			if !ok || subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
			}

			c.Set("username", username)
			c.Set("role", account.Role)

			return next(c)
		}
	}
}
