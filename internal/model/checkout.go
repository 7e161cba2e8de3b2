package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CheckoutState tracks how far the ordered checkout sequence has advanced.
// States only move forward, except that address and delivery edits fold
// the session back to TAX_READY / DELIVERY_SET, and FAILED is absorbing.
type CheckoutState string

const (
	StateEmpty                  CheckoutState = "EMPTY"
	StateCreated                CheckoutState = "CREATED"
	StateAddressSet             CheckoutState = "ADDRESS_SET"
	StateTaxReady               CheckoutState = "TAX_READY"
	StateDeliverySet            CheckoutState = "DELIVERY_SET"
	StateGatewayReady           CheckoutState = "GATEWAY_READY"
	StateTransactionInitialized CheckoutState = "TRANSACTION_INITIALIZED"
	StateProcessed              CheckoutState = "PROCESSED"
	StateCompleted              CheckoutState = "COMPLETED"
	StateFailed                 CheckoutState = "FAILED"
)

// PaymentState is the payment sub-machine riding on the checkout states.
type PaymentState string

const (
	PaymentNone                   PaymentState = "NONE"
	PaymentGatewayReady           PaymentState = "GATEWAY_READY"
	PaymentTransactionInitialized PaymentState = "TRANSACTION_INITIALIZED"
	PaymentProcessing             PaymentState = "PROCESSING"
	PaymentCompleted              PaymentState = "COMPLETED"
	PaymentFailed                 PaymentState = "FAILED"
)

// Address in the backend's shape.
type Address struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street1    string `json:"streetAddress1"`
	Street2    string `json:"streetAddress2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"countryArea"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// SplitFullName splits a free-text full name at the first whitespace run:
// first token becomes the first name, the remainder (spaces preserved)
// the last name. A single token is all first name.
func SplitFullName(full string) (string, string) {
	trimmed := strings.TrimSpace(full)
	if trimmed == "" {
		return "", ""
	}
	idx := strings.IndexFunc(trimmed, func(r rune) bool { return r == ' ' || r == '\t' })
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx:])
}

// Pricing holds the backend-computed money fields the session has seen so
// far. Zero values mean "not computed yet", never "free".
type Pricing struct {
	SubtotalNet decimal.Decimal
	TotalNet    decimal.Decimal
	TotalGross  decimal.Decimal
	Currency    string
}

type CheckoutLine struct {
	ProductName        string
	ProductDescription string
	Quantity           int
}

// CheckoutSession is the in-memory aggregate for one checkout attempt.
// It mirrors the backend checkout it fronts and records which steps have
// confirmed; it is never persisted.
type CheckoutSession struct {
	ID         string
	State      CheckoutState
	FailedStep string

	Email           string
	ShippingAddress *Address
	BillingAddress  *Address
	Lines           []CheckoutLine
	Pricing         Pricing

	DeliveryMethodID string

	PaymentState   PaymentState
	GatewayID      string
	TransactionID  string
	IdempotencyKey string

	OrderID string
}

func NewCheckoutSession() *CheckoutSession {
	return &CheckoutSession{
		State:        StateEmpty,
		PaymentState: PaymentNone,
	}
}

// Fail moves the session to the absorbing failed state, recording which
// step gave up.
func (cs *CheckoutSession) Fail(step string) {
	cs.State = StateFailed
	cs.FailedStep = step
	cs.PaymentState = PaymentFailed
}

// Terminal reports whether the session accepts no further steps.
func (cs *CheckoutSession) Terminal() bool {
	return cs.State == StateCompleted || cs.State == StateFailed
}

// InvalidateGateway voids the gateway handshake and any initialized
// transaction after an amount-changing edit. A later payment attempt
// re-runs the handshake against the new total.
func (cs *CheckoutSession) InvalidateGateway() {
	cs.GatewayID = ""
	cs.TransactionID = ""
	cs.IdempotencyKey = ""
	cs.PaymentState = PaymentNone
}

// UserIdentity is the resolved signed-in identity for a request.
type UserIdentity struct {
	Email string
}
