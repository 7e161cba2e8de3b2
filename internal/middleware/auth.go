package middleware

import (
	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/session"
)

// TokenContextKey is where the session token lives on the echo context.
const TokenContextKey = "session_token"

// SessionToken copies the cookie-carried session token into the request
// context. It never rejects: an absent or stale token means the request
// proceeds anonymously and each handler decides what that implies.
func SessionToken(cookies *session.Cookies) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(TokenContextKey, cookies.Read(c))
			return next(c)
		}
	}
}

// Token reads the session token previously stored by SessionToken.
func Token(c echo.Context) string {
	if v, ok := c.Get(TokenContextKey).(string); ok {
		return v
	}
	return ""
}
