package handler

import (
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/service"
	"storefront-gateway/internal/session"
)

type AuthHandler struct {
	authService service.AuthService
	cookies     *session.Cookies
	validator   *validatorv10.Validate
	log         *zap.SugaredLogger
}

func NewAuthHandler(authService service.AuthService, cookies *session.Cookies, v *validatorv10.Validate, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		validator:   v,
		log:         log,
	}
}

// Login exchanges credentials for a session token and sets the cookie.
// POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := bindAndValidate(c, &req, h.validator); err != nil {
		return writeError(c, err)
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	h.cookies.Write(c, token)
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Logout clears the session cookie wholesale.
// POST /api/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Me reports the session identity; anonymous is a normal answer, never an
// error, even for a stale token.
// GET /api/me
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := h.authService.Identity(ctx, middleware.Token(c))
	if err != nil {
		return writeError(c, err)
	}
	if identity == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"user": nil})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": identity})
}

// Register creates an account pending confirmation.
// POST /api/register
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req, h.validator); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.Register(ctx, req.Email, req.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ConfirmAccount finalizes a registration with the emailed token.
// POST /api/register/confirm
func (h *AuthHandler) ConfirmAccount(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ConfirmAccountRequest
	if err := bindAndValidate(c, &req, h.validator); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.ConfirmAccount(ctx, req.Email, req.Token); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// RequestPasswordReset sends the reset email. Responds ok either way; the
// backend decides whether the address exists.
// POST /api/password-reset
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PasswordResetRequest
	if err := bindAndValidate(c, &req, h.validator); err != nil {
		return writeError(c, err)
	}

	if err := h.authService.RequestPasswordReset(ctx, req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ConfirmPasswordReset sets the new password and signs the user in with
// the fresh token the backend issues.
// POST /api/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PasswordResetConfirmRequest
	if err := bindAndValidate(c, &req, h.validator); err != nil {
		return writeError(c, err)
	}

	token, err := h.authService.ConfirmPasswordReset(ctx, req.Email, req.Token, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	if token != "" {
		h.cookies.Write(c, token)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
