package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
	log            *zap.SugaredLogger
}

func NewProfileHandler(profileService service.ProfileService, log *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

// Get loads the signed-in profile.
// GET /api/profile
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.profileService.Get(ctx, middleware.Token(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Update applies the profile change-set.
// POST /api/profile
func (h *ProfileHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var update dto.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return writeError(c, model.NewDomainError("", "invalid request body"))
	}

	if err := h.profileService.Update(ctx, middleware.Token(c), update); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
