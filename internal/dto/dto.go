package dto

import "storefront-gateway/internal/model"

// AddressForm is the shipping address as the client submits it: a single
// free-text full name plus structured fields. Validated locally before any
// network call; postal code and region rules match the supported country (US).
type AddressForm struct {
	FullName   string `json:"fullName" validate:"required"`
	Street1    string `json:"streetAddress1" validate:"required"`
	Street2    string `json:"streetAddress2"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"countryArea" validate:"required,min=2"`
	PostalCode string `json:"postalCode" validate:"required,us_zip"`
	Country    string `json:"country" validate:"required,len=2"`
}

// Address converts the form into the backend's address shape, splitting
// the full name at the first whitespace.
func (f AddressForm) Address() model.Address {
	first, last := model.SplitFullName(f.FullName)
	return model.Address{
		FirstName:  first,
		LastName:   last,
		Street1:    f.Street1,
		Street2:    f.Street2,
		City:       f.City,
		Region:     f.Region,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

// BillingForm carries the billing details collected alongside the card.
type BillingForm struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Street1    string `json:"streetAddress1" validate:"required"`
	Street2    string `json:"streetAddress2"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"countryArea" validate:"required,min=2"`
	PostalCode string `json:"postalCode" validate:"required,us_zip"`
	Country    string `json:"country" validate:"required,len=2"`
}

func (f BillingForm) Address() model.Address {
	return model.Address{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Street1:    f.Street1,
		Street2:    f.Street2,
		City:       f.City,
		Region:     f.Region,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

// PaymentForm triggers the payment flow for a checkout. PaymentData is the
// opaque payload from the processor's browser SDK (payment-method reference
// included); it is forwarded to the backend untouched.
type PaymentForm struct {
	Billing     BillingForm            `json:"billingAddress" validate:"required"`
	PaymentData map[string]interface{} `json:"paymentData" validate:"required"`
}

type DeliveryForm struct {
	DeliveryMethodID string `json:"deliveryMethodId" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ConfirmAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// PasswordChange is the optional password part of a profile update.
type PasswordChange struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ProfileUpdate is the profile change-set. CurrentPassword is mandatory for
// every update regardless of which fields change; it is re-verified against
// the backend immediately before anything is applied.
type ProfileUpdate struct {
	CurrentPassword string          `json:"currentPassword" validate:"required"`
	FirstName       *string         `json:"firstName,omitempty"`
	LastName        *string         `json:"lastName,omitempty"`
	ShippingAddress *AddressForm    `json:"shippingAddress,omitempty"`
	Password        *PasswordChange `json:"password,omitempty"`
}

// Profile is the profile read model.
type Profile struct {
	Email           string         `json:"email"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	ShippingAddress *model.Address `json:"shippingAddress,omitempty"`
	// AddressID is the backend id of the default shipping address when one
	// exists; it decides the upsert path on update.
	AddressID string `json:"-"`
}

// PricingView is what the checkout page displays. Amounts are fixed-point
// strings with two decimals; Tax is always Total - Subtotal, never negative.
type PricingView struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// CheckoutView is the session snapshot returned to the client.
type CheckoutView struct {
	ID               string             `json:"id"`
	State            string             `json:"state"`
	FailedStep       string             `json:"failedStep,omitempty"`
	PaymentState     string             `json:"paymentState"`
	DeliveryMethodID string             `json:"deliveryMethodId,omitempty"`
	OrderID          string             `json:"orderId,omitempty"`
	Pricing          PricingView        `json:"pricing"`
	ShippingAddress  *model.Address     `json:"shippingAddress,omitempty"`
	Lines            []CheckoutLineView `json:"lines"`
}

type CheckoutLineView struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription,omitempty"`
	Quantity           int    `json:"quantity"`
}

type PayResponse struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// ProductPanel is the static product column shown before a checkout exists.
type ProductPanel struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Quantity    int         `json:"quantity"`
	Image       *Image      `json:"image,omitempty"`
	BasePrice   PricingView `json:"basePrice"`
}

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}
