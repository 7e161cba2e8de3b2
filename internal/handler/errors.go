package handler

import (
	"errors"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/validation"
)

// writeError maps the error taxonomy onto HTTP responses in one place.
// Domain errors pass their message through verbatim; integration defects
// (GraphQL-level) and transport failures stay generic, detail is logged
// where they were raised.
func writeError(c echo.Context, err error) error {
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validation.ErrorsToMap(ve),
		})
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		body := map[string]interface{}{"error": derr.Message}
		if derr.Field != "" {
			body["field"] = derr.Field
		}
		return c.JSON(http.StatusBadRequest, body)
	}

	switch {
	case errors.Is(err, model.ErrSignInRequired), errors.Is(err, model.ErrAuthExpired):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "sign in required"})
	case errors.Is(err, model.ErrCheckoutNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "checkout not found"})
	case errors.Is(err, model.ErrBusy):
		return c.JSON(http.StatusConflict, map[string]string{"error": "another step is in progress"})
	case errors.Is(err, model.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, map[string]string{"error": "step not allowed in current checkout state"})
	}

	var terr *model.TransportError
	if errors.As(err, &terr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "service temporarily unavailable, please try again"})
	}

	var gerr *model.GraphQLError
	if errors.As(err, &gerr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "unexpected backend response"})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// bindAndValidate decodes the JSON body into out and runs the configured
// validator; the caller short-circuits by passing the error to writeError.
func bindAndValidate(c echo.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.Bind(out); err != nil {
		return model.NewDomainError("", "invalid request body")
	}
	return v.Struct(out)
}
