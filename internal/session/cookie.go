package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Cookies carries the session token between requests. The value is an
// opaque bearer credential owned by the commerce backend; it is replaced
// wholesale on login and cleared wholesale on logout, never edited.
type Cookies struct {
	Name   string
	Secure bool
}

func NewCookies(name string, secure bool) *Cookies {
	return &Cookies{Name: name, Secure: secure}
}

// Write sets the session cookie on the response.
func (s *Cookies) Write(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    token,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.Secure,
		Path:     "/",
	})
}

// Clear expires the session cookie immediately.
func (s *Cookies) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.Secure,
		Path:     "/",
		MaxAge:   -1,
	})
}

// Read returns the session token, or "" when the cookie is absent.
func (s *Cookies) Read(c echo.Context) string {
	cookie, err := c.Cookie(s.Name)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
