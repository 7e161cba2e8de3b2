package service

import (
	"context"
	"sync"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/repository"
)

// CheckoutService drives the checkout session through its ordered steps.
// Each method is one step: it checks the session's current state, performs
// exactly one logical backend interaction, and mutates the session only on
// confirmed success. A failed step leaves prior state intact; nothing is
// rolled back and nothing is retried here.
type CheckoutService interface {
	Create(ctx context.Context) (*model.CheckoutSession, error)
	SetShippingAddress(ctx context.Context, cs *model.CheckoutSession, form dto.AddressForm) error
	SetDeliveryMethod(ctx context.Context, cs *model.CheckoutSession, deliveryMethodID string) error
	AttachCustomer(ctx context.Context, cs *model.CheckoutSession, token string) error
	CreatePaymentIntent(ctx context.Context, cs *model.CheckoutSession) (string, error)
	Pay(ctx context.Context, cs *model.CheckoutSession, token string, identity *model.UserIdentity, form dto.PaymentForm) (*dto.PayResponse, error)
}

type checkoutServiceImpl struct {
	commerce  client.CommerceClient
	payment   client.PaymentClient
	journal   repository.JournalRepository
	validator *validatorv10.Validate
	log       *zap.SugaredLogger

	channel   string
	variantID string

	// product display data, fetched once on first use
	productOnce sync.Once
	productName string
	productDesc string
}

func NewCheckoutService(
	commerce client.CommerceClient,
	payment client.PaymentClient,
	journal repository.JournalRepository,
	v *validatorv10.Validate,
	cfg *config.Commerce,
	log *zap.SugaredLogger,
) CheckoutService {
	return &checkoutServiceImpl{
		commerce:  commerce,
		payment:   payment,
		journal:   journal,
		validator: v,
		log:       log,
		channel:   cfg.Channel,
		variantID: cfg.VariantID,
	}
}

// Create runs the first backend call of a checkout attempt. Domain-level
// failures (out of stock) are terminal for the attempt: the session moves
// to FAILED(create) and the backend's message is surfaced verbatim.
func (s *checkoutServiceImpl) Create(ctx context.Context) (*model.CheckoutSession, error) {
	cs := model.NewCheckoutSession()

	payload, err := s.commerce.CheckoutCreate(ctx, s.channel, s.variantID, 1)
	if err != nil {
		return cs, err
	}
	if derr := payload.Errors.Err(); derr != nil {
		cs.Fail("create")
		return cs, derr
	}
	if payload.Checkout == nil || payload.Checkout.ID == "" {
		cs.Fail("create")
		return cs, model.NewDomainError("", "failed to create checkout")
	}

	cs.ID = payload.Checkout.ID
	cs.State = model.StateCreated
	applyPricing(&cs.Pricing, payload.Checkout)

	name, desc := s.productInfo(ctx)
	cs.Lines = []model.CheckoutLine{{
		ProductName:        name,
		ProductDescription: desc,
		Quantity:           1,
	}}

	return cs, nil
}

// SetShippingAddress validates locally, then lets the backend recompute
// pricing with its tax engine. Idempotent: resubmitting (same or edited
// address) repeats the computation; there is no separate undo. A backend
// rejection leaves the session editable in its prior state.
func (s *checkoutServiceImpl) SetShippingAddress(ctx context.Context, cs *model.CheckoutSession, form dto.AddressForm) error {
	if err := s.validator.Struct(form); err != nil {
		return err
	}

	switch cs.State {
	case model.StateCreated, model.StateAddressSet, model.StateTaxReady,
		model.StateDeliverySet, model.StateGatewayReady, model.StateTransactionInitialized:
	default:
		return model.ErrInvalidTransition
	}

	payload, err := s.commerce.CheckoutShippingAddressUpdate(ctx, cs.ID, form.Address())
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if payload.Checkout == nil {
		return model.NewDomainError("", "address update failed")
	}

	addr := form.Address()
	cs.ShippingAddress = &addr
	cs.State = model.StateAddressSet
	applyPricing(&cs.Pricing, payload.Checkout)

	// an amount change after the gateway handshake voids it
	if cs.GatewayID != "" || cs.TransactionID != "" {
		cs.InvalidateGateway()
	}
	cs.State = model.StateTaxReady
	return nil
}

// SetDeliveryMethod is optional; it folds shipping into the gross total.
func (s *checkoutServiceImpl) SetDeliveryMethod(ctx context.Context, cs *model.CheckoutSession, deliveryMethodID string) error {
	switch cs.State {
	case model.StateTaxReady, model.StateDeliverySet,
		model.StateGatewayReady, model.StateTransactionInitialized:
	default:
		return model.ErrInvalidTransition
	}

	payload, err := s.commerce.CheckoutDeliveryMethodUpdate(ctx, cs.ID, deliveryMethodID)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if payload.Checkout == nil {
		return model.NewDomainError("", "delivery method update failed")
	}

	cs.DeliveryMethodID = deliveryMethodID
	applyPricing(&cs.Pricing, payload.Checkout)
	if cs.GatewayID != "" || cs.TransactionID != "" {
		cs.InvalidateGateway()
	}
	cs.State = model.StateDeliverySet
	return nil
}

// AttachCustomer binds the backend checkout to the account that just
// signed in mid-flow.
func (s *checkoutServiceImpl) AttachCustomer(ctx context.Context, cs *model.CheckoutSession, token string) error {
	if token == "" {
		return model.ErrSignInRequired
	}
	if cs.Terminal() || cs.State == model.StateEmpty {
		return model.ErrInvalidTransition
	}

	payload, err := s.commerce.CheckoutCustomerAttach(ctx, token, cs.ID)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if payload.Checkout != nil && payload.Checkout.User != nil {
		cs.Email = payload.Checkout.User.Email
	}
	return nil
}

// CreatePaymentIntent asks the processor for the client secret the browser
// SDK needs to tokenize the card against the current gross total.
func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, cs *model.CheckoutSession) (string, error) {
	if !cs.Pricing.TotalGross.IsPositive() {
		return "", model.ErrInvalidTransition
	}

	intent, err := s.payment.CreatePaymentIntent(ctx, cs.Pricing.TotalGross, cs.Pricing.Currency)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// Pay runs the payment tail of the sequence in order: email, billing
// address, gateway handshake, transaction initialization, processing,
// completion. Requires a signed-in identity. Completion that returns no
// order is a domain failure: the session stays in PROCESSED for support
// reconciliation and is never silently retried.
func (s *checkoutServiceImpl) Pay(ctx context.Context, cs *model.CheckoutSession, token string, identity *model.UserIdentity, form dto.PaymentForm) (*dto.PayResponse, error) {
	if identity == nil || identity.Email == "" {
		return nil, model.ErrSignInRequired
	}
	if err := s.validator.Struct(form); err != nil {
		return nil, err
	}

	switch cs.State {
	case model.StateTaxReady, model.StateDeliverySet,
		model.StateGatewayReady, model.StateTransactionInitialized:
	default:
		return nil, model.ErrInvalidTransition
	}

	// one idempotency key per attempt; a retried attempt after a transport
	// failure reuses it so the backend can de-duplicate money movement
	if cs.IdempotencyKey == "" {
		cs.IdempotencyKey = uuid.NewString()
		s.recordAttempt(ctx, cs)
	}

	if err := s.updateEmail(ctx, cs, token, identity.Email); err != nil {
		return nil, err
	}
	if err := s.updateBilling(ctx, cs, token, form.Billing); err != nil {
		return nil, err
	}
	if err := s.initializeGateway(ctx, cs, token); err != nil {
		return nil, err
	}
	if err := s.initializeTransaction(ctx, cs, token, form.PaymentData); err != nil {
		return nil, err
	}
	if err := s.processTransaction(ctx, cs, token); err != nil {
		return nil, err
	}
	return s.complete(ctx, cs, token)
}

func (s *checkoutServiceImpl) updateEmail(ctx context.Context, cs *model.CheckoutSession, token, email string) error {
	payload, err := s.commerce.CheckoutEmailUpdate(ctx, token, cs.ID, email)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	cs.Email = email
	return nil
}

func (s *checkoutServiceImpl) updateBilling(ctx context.Context, cs *model.CheckoutSession, token string, form dto.BillingForm) error {
	payload, err := s.commerce.CheckoutBillingAddressUpdate(ctx, token, cs.ID, form.Address())
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	addr := form.Address()
	cs.BillingAddress = &addr
	return nil
}

func (s *checkoutServiceImpl) initializeGateway(ctx context.Context, cs *model.CheckoutSession, token string) error {
	if cs.GatewayID != "" {
		return nil
	}

	payload, err := s.commerce.PaymentGatewayInitialize(ctx, token, cs.ID, cs.Pricing.TotalGross.InexactFloat64())
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if len(payload.GatewayConfigs) == 0 || payload.GatewayConfigs[0].ID == "" {
		cs.Fail("gateway")
		return model.NewDomainError("", "payment gateway not initialized")
	}

	cs.GatewayID = payload.GatewayConfigs[0].ID
	cs.PaymentState = model.PaymentGatewayReady
	cs.State = model.StateGatewayReady
	return nil
}

func (s *checkoutServiceImpl) initializeTransaction(ctx context.Context, cs *model.CheckoutSession, token string, paymentData map[string]interface{}) error {
	if cs.TransactionID != "" {
		return nil
	}

	data := make(map[string]interface{}, len(paymentData)+1)
	for k, v := range paymentData {
		data[k] = v
	}
	data["idempotencyKey"] = cs.IdempotencyKey

	payload, err := s.commerce.TransactionInitialize(ctx, token, cs.ID, cs.GatewayID, cs.Pricing.TotalGross.InexactFloat64(), data)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if payload.Transaction == nil || payload.Transaction.ID == "" {
		cs.Fail("transaction")
		return model.NewDomainError("", "transaction not created")
	}

	cs.TransactionID = payload.Transaction.ID
	cs.PaymentState = model.PaymentTransactionInitialized
	cs.State = model.StateTransactionInitialized
	return nil
}

// processTransaction drives the charge. A domain failure here is terminal
// for the attempt: money movement is not blindly retryable.
func (s *checkoutServiceImpl) processTransaction(ctx context.Context, cs *model.CheckoutSession, token string) error {
	cs.PaymentState = model.PaymentProcessing

	payload, err := s.commerce.TransactionProcess(ctx, token, cs.TransactionID)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		cs.Fail("process")
		return derr
	}

	cs.State = model.StateProcessed
	if err := s.journal.MarkProcessed(ctx, cs.ID, cs.TransactionID); err != nil {
		s.log.Warnw("journal mark processed failed", "checkout_id", cs.ID, "err", err)
	}
	return nil
}

func (s *checkoutServiceImpl) complete(ctx context.Context, cs *model.CheckoutSession, token string) (*dto.PayResponse, error) {
	payload, err := s.commerce.CheckoutComplete(ctx, token, cs.ID)
	if err != nil {
		return nil, err
	}
	if derr := payload.Errors.Err(); derr != nil {
		// charge went through; keep PROCESSED for reconciliation
		if jerr := s.journal.MarkPendingReconcile(ctx, cs.ID); jerr != nil {
			s.log.Warnw("journal mark pending reconcile failed", "checkout_id", cs.ID, "err", jerr)
		}
		return nil, derr
	}
	if payload.Order == nil || payload.Order.ID == "" {
		if jerr := s.journal.MarkPendingReconcile(ctx, cs.ID); jerr != nil {
			s.log.Warnw("journal mark pending reconcile failed", "checkout_id", cs.ID, "err", jerr)
		}
		s.log.Errorw("checkout completed without an order", "checkout_id", cs.ID, "transaction_id", cs.TransactionID)
		return nil, model.NewDomainError("", "checkout not completed")
	}

	cs.OrderID = payload.Order.ID
	cs.State = model.StateCompleted
	cs.PaymentState = model.PaymentCompleted
	if err := s.journal.MarkCompleted(ctx, cs.ID, cs.OrderID); err != nil {
		s.log.Warnw("journal mark completed failed", "checkout_id", cs.ID, "err", err)
	}

	return &dto.PayResponse{OrderID: cs.OrderID, TransactionID: cs.TransactionID}, nil
}

// recordAttempt writes the journal row for a new payment attempt.
// Best effort: a journal failure must not block the payment itself.
func (s *checkoutServiceImpl) recordAttempt(ctx context.Context, cs *model.CheckoutSession) {
	err := s.journal.CreateAttempt(ctx, &model.PaymentAttempt{
		CheckoutID:     cs.ID,
		IdempotencyKey: cs.IdempotencyKey,
		AmountGross:    cs.Pricing.TotalGross.StringFixed(2),
		Currency:       cs.Pricing.Currency,
		Status:         model.AttemptInitiated,
	})
	if err != nil {
		s.log.Warnw("journal create attempt failed", "checkout_id", cs.ID, "err", err)
	}
}

func (s *checkoutServiceImpl) productInfo(ctx context.Context) (string, string) {
	s.productOnce.Do(func() {
		variant, err := s.commerce.ProductVariant(ctx, s.variantID, s.channel)
		if err != nil || variant == nil {
			s.log.Warnw("product info lookup failed", "variant_id", s.variantID, "err", err)
			return
		}
		s.productName = variant.Product.Name
		if variant.Product.Description != nil {
			s.productDesc = FlattenDescription(*variant.Product.Description)
		}
	})
	return s.productName, s.productDesc
}

// applyPricing copies the backend's recomputed money fields onto the
// session, keeping whatever the operation did not select.
func applyPricing(p *model.Pricing, summary *client.CheckoutSummary) {
	if summary.SubtotalPrice != nil && summary.SubtotalPrice.Net != nil {
		p.SubtotalNet = decimal.NewFromFloat(summary.SubtotalPrice.Net.Amount)
		if summary.SubtotalPrice.Net.Currency != "" {
			p.Currency = summary.SubtotalPrice.Net.Currency
		}
	}
	if summary.TotalPrice != nil {
		if summary.TotalPrice.Net != nil {
			p.TotalNet = decimal.NewFromFloat(summary.TotalPrice.Net.Amount)
		}
		if summary.TotalPrice.Gross != nil {
			p.TotalGross = decimal.NewFromFloat(summary.TotalPrice.Gross.Amount)
			if summary.TotalPrice.Gross.Currency != "" {
				p.Currency = summary.TotalPrice.Gross.Currency
			}
		}
	}
}
