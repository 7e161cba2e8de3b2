package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/model"
)

// CommerceClient is the single-purpose gateway to the commerce backend's
// GraphQL endpoint. Every method posts one named operation and decodes a
// strict typed payload; there is no retry at this layer.
//
// Mutation-level errors lists are returned inside the payloads for the
// orchestration layer to interpret; only transport failures and top-level
// GraphQL errors are raised here.
type CommerceClient interface {
	// checkout
	CheckoutCreate(ctx context.Context, channel, variantID string, quantity int) (*CheckoutCreatePayload, error)
	CheckoutShippingAddressUpdate(ctx context.Context, checkoutID string, address model.Address) (*CheckoutMutationPayload, error)
	CheckoutBillingAddressUpdate(ctx context.Context, token, checkoutID string, address model.Address) (*CheckoutMutationPayload, error)
	CheckoutEmailUpdate(ctx context.Context, token, checkoutID, email string) (*CheckoutMutationPayload, error)
	CheckoutDeliveryMethodUpdate(ctx context.Context, checkoutID, deliveryMethodID string) (*CheckoutMutationPayload, error)
	CheckoutCustomerAttach(ctx context.Context, token, checkoutID string) (*CustomerAttachPayload, error)
	PaymentGatewayInitialize(ctx context.Context, token, checkoutID string, amount float64) (*GatewayInitializePayload, error)
	TransactionInitialize(ctx context.Context, token, checkoutID, gatewayID string, amount float64, data map[string]interface{}) (*TransactionPayload, error)
	TransactionProcess(ctx context.Context, token, transactionID string) (*TransactionPayload, error)
	CheckoutComplete(ctx context.Context, token, checkoutID string) (*CheckoutCompletePayload, error)

	// accounts
	TokenCreate(ctx context.Context, email, password string) (*TokenCreatePayload, error)
	Me(ctx context.Context, token string) (*Account, error)
	Profile(ctx context.Context, token string) (*Account, error)
	AccountUpdate(ctx context.Context, token string, firstName, lastName *string) (MutationErrors, error)
	AccountAddressCreate(ctx context.Context, token string, address model.Address) (*AddressCreatePayload, error)
	AccountAddressUpdate(ctx context.Context, token, addressID string, address model.Address) (MutationErrors, error)
	AccountSetDefaultAddress(ctx context.Context, token, addressID string) (MutationErrors, error)
	PasswordChange(ctx context.Context, token, oldPassword, newPassword string) (MutationErrors, error)
	AccountRegister(ctx context.Context, email, password string) (MutationErrors, error)
	ConfirmAccount(ctx context.Context, email, token string) (MutationErrors, error)
	RequestPasswordReset(ctx context.Context, email string) (MutationErrors, error)
	SetPassword(ctx context.Context, email, token, password string) (*TokenCreatePayload, error)

	// catalog
	ProductVariant(ctx context.Context, variantID, channel string) (*ProductVariant, error)
}

type commerceClientImpl struct {
	httpClient *http.Client
	apiURL     string
	log        *zap.SugaredLogger
}

func NewCommerceClient(cfg *config.Commerce, log *zap.SugaredLogger) CommerceClient {
	return &commerceClientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		apiURL: cfg.APIURL,
		log:    log,
	}
}

// gqlEnvelope is the backend's {data, errors} response wrapper.
type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do posts one operation and decodes the data payload into out.
// Failure modes: *model.TransportError for HTTP-layer failures (timeouts
// included), *model.GraphQLError for a top-level errors list or a payload
// that does not match the declared shape.
func (c *commerceClientImpl) do(ctx context.Context, op, query string, variables map[string]interface{}, token string, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &model.TransportError{Service: "commerce", Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &model.TransportError{Service: "commerce", Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Errorw("commerce backend error response",
			"op", op, "status", resp.StatusCode, "body", string(raw))
		return &model.TransportError{
			Service: "commerce",
			Op:      op,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &model.TransportError{Service: "commerce", Op: op, Err: fmt.Errorf("decode envelope: %w", err)}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		// full detail stays server-side; handlers surface this generically
		c.log.Errorw("graphql operation rejected", "op", op, "errors", messages)
		return &model.GraphQLError{Op: op, Messages: messages}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &model.GraphQLError{Op: op, Messages: []string{fmt.Sprintf("decode data: %v", err)}}
	}
	return nil
}

// MutationError is one entry of a mutation's own errors list. Distinct
// from the top-level GraphQL errors: these are expected domain outcomes.
type MutationError struct {
	Field   *string `json:"field"`
	Message string  `json:"message"`
}

type MutationErrors []MutationError

// Err folds a mutation errors list into a single *model.DomainError,
// or nil when the list is empty.
func (es MutationErrors) Err() error {
	if len(es) == 0 {
		return nil
	}
	field := ""
	if es[0].Field != nil {
		field = *es[0].Field
	}
	messages := make([]string, len(es))
	for i, e := range es {
		messages[i] = e.Message
	}
	return model.NewDomainError(field, messages...)
}

// Money and TaxedMoney mirror the backend's pricing fragments. Pointers
// stay nil for fields the operation did not select or the backend has not
// computed yet; the projection layer tolerates that.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type TaxedMoney struct {
	Net   *Money `json:"net,omitempty"`
	Gross *Money `json:"gross,omitempty"`
}

// CheckoutSummary is the checkout fragment every checkout mutation selects.
type CheckoutSummary struct {
	ID            string      `json:"id"`
	SubtotalPrice *TaxedMoney `json:"subtotalPrice,omitempty"`
	TotalPrice    *TaxedMoney `json:"totalPrice,omitempty"`
}
