package handler

import (
	"errors"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/service"
	"storefront-gateway/internal/session"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	authService     service.AuthService
	registry        *session.Registry
	validator       *validatorv10.Validate
	log             *zap.SugaredLogger
}

func NewCheckoutHandler(
	checkoutService service.CheckoutService,
	authService service.AuthService,
	registry *session.Registry,
	v *validatorv10.Validate,
	log *zap.SugaredLogger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		authService:     authService,
		registry:        registry,
		validator:       v,
		log:             log,
	}
}

// Create starts a checkout attempt for the fixed product line.
// POST /api/checkout
func (h *CheckoutHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	cs, err := h.checkoutService.Create(ctx)
	if err != nil {
		return writeError(c, err)
	}

	h.registry.Put(cs)
	h.log.Infow("checkout created", "checkout_id", cs.ID)

	return c.JSON(http.StatusCreated, h.view(cs))
}

// Get returns the session snapshot with its pricing projection.
// GET /api/checkout/:id
func (h *CheckoutHandler) Get(c echo.Context) error {
	cs, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.view(cs))
}

// SetAddress submits (or resubmits) the shipping address.
// POST /api/checkout/:id/address
func (h *CheckoutHandler) SetAddress(c echo.Context) error {
	ctx := c.Request().Context()

	var form dto.AddressForm
	if err := c.Bind(&form); err != nil {
		return writeError(c, model.NewDomainError("", "invalid request body"))
	}

	cs, release, err := h.registry.Acquire(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	if err := h.checkoutService.SetShippingAddress(ctx, cs, form); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.view(cs))
}

// SetDelivery selects a delivery method.
// POST /api/checkout/:id/delivery
func (h *CheckoutHandler) SetDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	var form dto.DeliveryForm
	if err := bindAndValidate(c, &form, h.validator); err != nil {
		return writeError(c, err)
	}

	cs, release, err := h.registry.Acquire(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	if err := h.checkoutService.SetDeliveryMethod(ctx, cs, form.DeliveryMethodID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.view(cs))
}

// Attach binds the checkout to the account that signed in mid-flow.
// POST /api/checkout/:id/attach
func (h *CheckoutHandler) Attach(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.Token(c)

	cs, release, err := h.registry.Acquire(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	if err := h.checkoutService.AttachCustomer(ctx, cs, token); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.view(cs))
}

// PaymentIntent returns the processor client secret for the browser SDK.
// POST /api/checkout/:id/payment-intent
func (h *CheckoutHandler) PaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	cs, release, err := h.registry.Acquire(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	secret, err := h.checkoutService.CreatePaymentIntent(ctx, cs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"clientSecret": secret})
}

// Pay runs the payment tail of the checkout sequence.
// POST /api/checkout/:id/payment
func (h *CheckoutHandler) Pay(c echo.Context) error {
	ctx := c.Request().Context()
	token := middleware.Token(c)

	var form dto.PaymentForm
	if err := c.Bind(&form); err != nil {
		return writeError(c, model.NewDomainError("", "invalid request body"))
	}

	identity, err := h.authService.Identity(ctx, token)
	if err != nil {
		return writeError(c, err)
	}

	cs, release, err := h.registry.Acquire(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	defer release()

	result, err := h.checkoutService.Pay(ctx, cs, token, identity, form)
	if err != nil {
		var terr *model.TransportError
		if errors.As(err, &terr) && cs.State == model.StateProcessed {
			// charge likely went through but completion is unconfirmed:
			// tell the client to show the persistent verify-order banner
			// instead of inviting a second payment
			return c.JSON(http.StatusBadGateway, map[string]interface{}{
				"error":       "could not confirm order, please verify order status before retrying payment",
				"verifyOrder": true,
			})
		}
		return writeError(c, err)
	}

	h.log.Infow("checkout completed",
		"checkout_id", cs.ID, "order_id", result.OrderID, "transaction_id", result.TransactionID)

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) view(cs *model.CheckoutSession) dto.CheckoutView {
	view := dto.CheckoutView{
		ID:               cs.ID,
		State:            string(cs.State),
		FailedStep:       cs.FailedStep,
		PaymentState:     string(cs.PaymentState),
		DeliveryMethodID: cs.DeliveryMethodID,
		OrderID:          cs.OrderID,
		Pricing:          service.ProjectPricing(cs.Pricing, h.log),
		ShippingAddress:  cs.ShippingAddress,
	}
	for _, line := range cs.Lines {
		view.Lines = append(view.Lines, dto.CheckoutLineView{
			ProductName:        line.ProductName,
			ProductDescription: line.ProductDescription,
			Quantity:           line.Quantity,
		})
	}
	return view
}
