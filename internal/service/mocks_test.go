package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/model"
)

var errNotStubbed = errors.New("not stubbed")

// mockCommerce implements client.CommerceClient with overridable funcs.
// Calls counts every invocation by operation name so tests can assert
// that a step did or did not reach the network.
type mockCommerce struct {
	Calls map[string]int

	CheckoutCreateFn               func(ctx context.Context, channel, variantID string, quantity int) (*client.CheckoutCreatePayload, error)
	CheckoutShippingAddressFn      func(ctx context.Context, checkoutID string, address model.Address) (*client.CheckoutMutationPayload, error)
	CheckoutBillingAddressFn       func(ctx context.Context, token, checkoutID string, address model.Address) (*client.CheckoutMutationPayload, error)
	CheckoutEmailUpdateFn          func(ctx context.Context, token, checkoutID, email string) (*client.CheckoutMutationPayload, error)
	CheckoutDeliveryMethodUpdateFn func(ctx context.Context, checkoutID, deliveryMethodID string) (*client.CheckoutMutationPayload, error)
	CheckoutCustomerAttachFn       func(ctx context.Context, token, checkoutID string) (*client.CustomerAttachPayload, error)
	PaymentGatewayInitializeFn     func(ctx context.Context, token, checkoutID string, amount float64) (*client.GatewayInitializePayload, error)
	TransactionInitializeFn        func(ctx context.Context, token, checkoutID, gatewayID string, amount float64, data map[string]interface{}) (*client.TransactionPayload, error)
	TransactionProcessFn           func(ctx context.Context, token, transactionID string) (*client.TransactionPayload, error)
	CheckoutCompleteFn             func(ctx context.Context, token, checkoutID string) (*client.CheckoutCompletePayload, error)
	TokenCreateFn                  func(ctx context.Context, email, password string) (*client.TokenCreatePayload, error)
	MeFn                           func(ctx context.Context, token string) (*client.Account, error)
	ProfileFn                      func(ctx context.Context, token string) (*client.Account, error)
	AccountUpdateFn                func(ctx context.Context, token string, firstName, lastName *string) (client.MutationErrors, error)
	AccountAddressCreateFn         func(ctx context.Context, token string, address model.Address) (*client.AddressCreatePayload, error)
	AccountAddressUpdateFn         func(ctx context.Context, token, addressID string, address model.Address) (client.MutationErrors, error)
	AccountSetDefaultAddressFn     func(ctx context.Context, token, addressID string) (client.MutationErrors, error)
	PasswordChangeFn               func(ctx context.Context, token, oldPassword, newPassword string) (client.MutationErrors, error)
	AccountRegisterFn              func(ctx context.Context, email, password string) (client.MutationErrors, error)
	ConfirmAccountFn               func(ctx context.Context, email, token string) (client.MutationErrors, error)
	RequestPasswordResetFn         func(ctx context.Context, email string) (client.MutationErrors, error)
	SetPasswordFn                  func(ctx context.Context, email, token, password string) (*client.TokenCreatePayload, error)
	ProductVariantFn               func(ctx context.Context, variantID, channel string) (*client.ProductVariant, error)
}

func newMockCommerce() *mockCommerce {
	return &mockCommerce{Calls: map[string]int{}}
}

func (m *mockCommerce) called(op string) { m.Calls[op]++ }

func (m *mockCommerce) CheckoutCreate(ctx context.Context, channel, variantID string, quantity int) (*client.CheckoutCreatePayload, error) {
	m.called("checkoutCreate")
	if m.CheckoutCreateFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutCreateFn(ctx, channel, variantID, quantity)
}

func (m *mockCommerce) CheckoutShippingAddressUpdate(ctx context.Context, checkoutID string, address model.Address) (*client.CheckoutMutationPayload, error) {
	m.called("checkoutShippingAddressUpdate")
	if m.CheckoutShippingAddressFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutShippingAddressFn(ctx, checkoutID, address)
}

func (m *mockCommerce) CheckoutBillingAddressUpdate(ctx context.Context, token, checkoutID string, address model.Address) (*client.CheckoutMutationPayload, error) {
	m.called("checkoutBillingAddressUpdate")
	if m.CheckoutBillingAddressFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutBillingAddressFn(ctx, token, checkoutID, address)
}

func (m *mockCommerce) CheckoutEmailUpdate(ctx context.Context, token, checkoutID, email string) (*client.CheckoutMutationPayload, error) {
	m.called("checkoutEmailUpdate")
	if m.CheckoutEmailUpdateFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutEmailUpdateFn(ctx, token, checkoutID, email)
}

func (m *mockCommerce) CheckoutDeliveryMethodUpdate(ctx context.Context, checkoutID, deliveryMethodID string) (*client.CheckoutMutationPayload, error) {
	m.called("checkoutDeliveryMethodUpdate")
	if m.CheckoutDeliveryMethodUpdateFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutDeliveryMethodUpdateFn(ctx, checkoutID, deliveryMethodID)
}

func (m *mockCommerce) CheckoutCustomerAttach(ctx context.Context, token, checkoutID string) (*client.CustomerAttachPayload, error) {
	m.called("checkoutCustomerAttach")
	if m.CheckoutCustomerAttachFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutCustomerAttachFn(ctx, token, checkoutID)
}

func (m *mockCommerce) PaymentGatewayInitialize(ctx context.Context, token, checkoutID string, amount float64) (*client.GatewayInitializePayload, error) {
	m.called("paymentGatewayInitialize")
	if m.PaymentGatewayInitializeFn == nil {
		return nil, errNotStubbed
	}
	return m.PaymentGatewayInitializeFn(ctx, token, checkoutID, amount)
}

func (m *mockCommerce) TransactionInitialize(ctx context.Context, token, checkoutID, gatewayID string, amount float64, data map[string]interface{}) (*client.TransactionPayload, error) {
	m.called("transactionInitialize")
	if m.TransactionInitializeFn == nil {
		return nil, errNotStubbed
	}
	return m.TransactionInitializeFn(ctx, token, checkoutID, gatewayID, amount, data)
}

func (m *mockCommerce) TransactionProcess(ctx context.Context, token, transactionID string) (*client.TransactionPayload, error) {
	m.called("transactionProcess")
	if m.TransactionProcessFn == nil {
		return nil, errNotStubbed
	}
	return m.TransactionProcessFn(ctx, token, transactionID)
}

func (m *mockCommerce) CheckoutComplete(ctx context.Context, token, checkoutID string) (*client.CheckoutCompletePayload, error) {
	m.called("checkoutComplete")
	if m.CheckoutCompleteFn == nil {
		return nil, errNotStubbed
	}
	return m.CheckoutCompleteFn(ctx, token, checkoutID)
}

func (m *mockCommerce) TokenCreate(ctx context.Context, email, password string) (*client.TokenCreatePayload, error) {
	m.called("tokenCreate")
	if m.TokenCreateFn == nil {
		return nil, errNotStubbed
	}
	return m.TokenCreateFn(ctx, email, password)
}

func (m *mockCommerce) Me(ctx context.Context, token string) (*client.Account, error) {
	m.called("me")
	if m.MeFn == nil {
		return nil, errNotStubbed
	}
	return m.MeFn(ctx, token)
}

func (m *mockCommerce) Profile(ctx context.Context, token string) (*client.Account, error) {
	m.called("profile")
	if m.ProfileFn == nil {
		return nil, errNotStubbed
	}
	return m.ProfileFn(ctx, token)
}

func (m *mockCommerce) AccountUpdate(ctx context.Context, token string, firstName, lastName *string) (client.MutationErrors, error) {
	m.called("accountUpdate")
	if m.AccountUpdateFn == nil {
		return nil, errNotStubbed
	}
	return m.AccountUpdateFn(ctx, token, firstName, lastName)
}

func (m *mockCommerce) AccountAddressCreate(ctx context.Context, token string, address model.Address) (*client.AddressCreatePayload, error) {
	m.called("accountAddressCreate")
	if m.AccountAddressCreateFn == nil {
		return nil, errNotStubbed
	}
	return m.AccountAddressCreateFn(ctx, token, address)
}

func (m *mockCommerce) AccountAddressUpdate(ctx context.Context, token, addressID string, address model.Address) (client.MutationErrors, error) {
	m.called("accountAddressUpdate")
	if m.AccountAddressUpdateFn == nil {
		return nil, errNotStubbed
	}
	return m.AccountAddressUpdateFn(ctx, token, addressID, address)
}

func (m *mockCommerce) AccountSetDefaultAddress(ctx context.Context, token, addressID string) (client.MutationErrors, error) {
	m.called("accountSetDefaultAddress")
	if m.AccountSetDefaultAddressFn == nil {
		return nil, errNotStubbed
	}
	return m.AccountSetDefaultAddressFn(ctx, token, addressID)
}

func (m *mockCommerce) PasswordChange(ctx context.Context, token, oldPassword, newPassword string) (client.MutationErrors, error) {
	m.called("passwordChange")
	if m.PasswordChangeFn == nil {
		return nil, errNotStubbed
	}
	return m.PasswordChangeFn(ctx, token, oldPassword, newPassword)
}

func (m *mockCommerce) AccountRegister(ctx context.Context, email, password string) (client.MutationErrors, error) {
	m.called("accountRegister")
	if m.AccountRegisterFn == nil {
		return nil, errNotStubbed
	}
	return m.AccountRegisterFn(ctx, email, password)
}

func (m *mockCommerce) ConfirmAccount(ctx context.Context, email, token string) (client.MutationErrors, error) {
	m.called("confirmAccount")
	if m.ConfirmAccountFn == nil {
		return nil, errNotStubbed
	}
	return m.ConfirmAccountFn(ctx, email, token)
}

func (m *mockCommerce) RequestPasswordReset(ctx context.Context, email string) (client.MutationErrors, error) {
	m.called("requestPasswordReset")
	if m.RequestPasswordResetFn == nil {
		return nil, errNotStubbed
	}
	return m.RequestPasswordResetFn(ctx, email)
}

func (m *mockCommerce) SetPassword(ctx context.Context, email, token, password string) (*client.TokenCreatePayload, error) {
	m.called("setPassword")
	if m.SetPasswordFn == nil {
		return nil, errNotStubbed
	}
	return m.SetPasswordFn(ctx, email, token, password)
}

func (m *mockCommerce) ProductVariant(ctx context.Context, variantID, channel string) (*client.ProductVariant, error) {
	m.called("productVariant")
	if m.ProductVariantFn == nil {
		return nil, nil
	}
	return m.ProductVariantFn(ctx, variantID, channel)
}

// mockPayment implements client.PaymentClient.
type mockPayment struct {
	CreateFn func(ctx context.Context, amount decimal.Decimal, currency string) (*client.PaymentIntent, error)
	GetFn    func(ctx context.Context, intentID string) (*client.PaymentIntent, error)
}

func (m *mockPayment) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*client.PaymentIntent, error) {
	if m.CreateFn == nil {
		return nil, errNotStubbed
	}
	return m.CreateFn(ctx, amount, currency)
}

func (m *mockPayment) GetPaymentIntent(ctx context.Context, intentID string) (*client.PaymentIntent, error) {
	if m.GetFn == nil {
		return nil, errNotStubbed
	}
	return m.GetFn(ctx, intentID)
}

// mockJournal implements repository.JournalRepository, recording statuses
// keyed by checkout id.
type mockJournal struct {
	Attempts []*model.PaymentAttempt
	Statuses map[string][]string
}

func newMockJournal() *mockJournal {
	return &mockJournal{Statuses: map[string][]string{}}
}

func (m *mockJournal) CreateAttempt(_ context.Context, attempt *model.PaymentAttempt) error {
	m.Attempts = append(m.Attempts, attempt)
	m.Statuses[attempt.CheckoutID] = append(m.Statuses[attempt.CheckoutID], attempt.Status)
	return nil
}

func (m *mockJournal) FindByCheckoutID(_ context.Context, checkoutID string) (*model.PaymentAttempt, error) {
	for i := len(m.Attempts) - 1; i >= 0; i-- {
		if m.Attempts[i].CheckoutID == checkoutID {
			return m.Attempts[i], nil
		}
	}
	return nil, errNotStubbed
}

func (m *mockJournal) MarkProcessed(_ context.Context, checkoutID, transactionID string) error {
	m.Statuses[checkoutID] = append(m.Statuses[checkoutID], model.AttemptProcessed)
	return nil
}

func (m *mockJournal) MarkCompleted(_ context.Context, checkoutID, orderID string) error {
	m.Statuses[checkoutID] = append(m.Statuses[checkoutID], model.AttemptCompleted)
	return nil
}

func (m *mockJournal) MarkPendingReconcile(_ context.Context, checkoutID string) error {
	m.Statuses[checkoutID] = append(m.Statuses[checkoutID], model.AttemptPendingReconcile)
	return nil
}
