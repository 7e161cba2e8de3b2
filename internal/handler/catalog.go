package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ProductPanel serves the static product column for the checkout page.
// GET /api/product
func (h *CatalogHandler) ProductPanel(c echo.Context) error {
	ctx := c.Request().Context()

	panel, err := h.catalogService.ProductPanel(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, panel)
}
