package client

import (
	"context"
	"encoding/json"

	"storefront-gateway/internal/model"
)

// --- CHECKOUT PAYLOADS ---

type CheckoutCreatePayload struct {
	Checkout *CheckoutSummary `json:"checkout"`
	Errors   MutationErrors   `json:"errors"`
}

type CheckoutMutationPayload struct {
	Checkout *CheckoutSummary `json:"checkout"`
	Errors   MutationErrors   `json:"errors"`
}

type CustomerAttachPayload struct {
	Checkout *struct {
		ID   string `json:"id"`
		User *struct {
			Email string `json:"email"`
		} `json:"user"`
	} `json:"checkout"`
	Errors MutationErrors `json:"errors"`
}

type GatewayConfig struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type GatewayInitializePayload struct {
	GatewayConfigs []GatewayConfig `json:"gatewayConfigs"`
	Errors         MutationErrors  `json:"errors"`
}

type TransactionPayload struct {
	Transaction *struct {
		ID string `json:"id"`
	} `json:"transaction"`
	Errors MutationErrors `json:"errors"`
}

type CheckoutCompletePayload struct {
	Order *struct {
		ID string `json:"id"`
	} `json:"order"`
	Errors MutationErrors `json:"errors"`
}

// --- CHECKOUT OPERATIONS ---

func (c *commerceClientImpl) CheckoutCreate(ctx context.Context, channel, variantID string, quantity int) (*CheckoutCreatePayload, error) {
	var out struct {
		CheckoutCreate *CheckoutCreatePayload `json:"checkoutCreate"`
	}
	err := c.do(ctx, "checkoutCreate", checkoutCreateDoc, map[string]interface{}{
		"channel": channel,
		"lines": []map[string]interface{}{
			{"variantId": variantID, "quantity": quantity},
		},
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.CheckoutCreate == nil {
		return nil, &model.GraphQLError{Op: "checkoutCreate", Messages: []string{"missing payload"}}
	}
	return out.CheckoutCreate, nil
}

func (c *commerceClientImpl) CheckoutShippingAddressUpdate(ctx context.Context, checkoutID string, address model.Address) (*CheckoutMutationPayload, error) {
	var out struct {
		Payload *CheckoutMutationPayload `json:"checkoutShippingAddressUpdate"`
	}
	err := c.do(ctx, "checkoutShippingAddressUpdate", checkoutShippingAddressUpdateDoc, map[string]interface{}{
		"checkoutId": checkoutID,
		"address":    address,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutShippingAddressUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) CheckoutBillingAddressUpdate(ctx context.Context, token, checkoutID string, address model.Address) (*CheckoutMutationPayload, error) {
	var out struct {
		Payload *CheckoutMutationPayload `json:"checkoutBillingAddressUpdate"`
	}
	err := c.do(ctx, "checkoutBillingAddressUpdate", checkoutBillingAddressUpdateDoc, map[string]interface{}{
		"checkoutId":     checkoutID,
		"billingAddress": address,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutBillingAddressUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) CheckoutEmailUpdate(ctx context.Context, token, checkoutID, email string) (*CheckoutMutationPayload, error) {
	var out struct {
		Payload *CheckoutMutationPayload `json:"checkoutEmailUpdate"`
	}
	err := c.do(ctx, "checkoutEmailUpdate", checkoutEmailUpdateDoc, map[string]interface{}{
		"checkoutId": checkoutID,
		"email":      email,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutEmailUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) CheckoutDeliveryMethodUpdate(ctx context.Context, checkoutID, deliveryMethodID string) (*CheckoutMutationPayload, error) {
	var out struct {
		Payload *CheckoutMutationPayload `json:"checkoutDeliveryMethodUpdate"`
	}
	err := c.do(ctx, "checkoutDeliveryMethodUpdate", checkoutDeliveryMethodUpdateDoc, map[string]interface{}{
		"checkoutId":       checkoutID,
		"deliveryMethodId": deliveryMethodID,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutDeliveryMethodUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) CheckoutCustomerAttach(ctx context.Context, token, checkoutID string) (*CustomerAttachPayload, error) {
	var out struct {
		Payload *CustomerAttachPayload `json:"checkoutCustomerAttach"`
	}
	err := c.do(ctx, "checkoutCustomerAttach", checkoutCustomerAttachDoc, map[string]interface{}{
		"checkoutId": checkoutID,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutCustomerAttach", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) PaymentGatewayInitialize(ctx context.Context, token, checkoutID string, amount float64) (*GatewayInitializePayload, error) {
	var out struct {
		Payload *GatewayInitializePayload `json:"paymentGatewayInitialize"`
	}
	err := c.do(ctx, "paymentGatewayInitialize", paymentGatewayInitializeDoc, map[string]interface{}{
		"checkoutId": checkoutID,
		"amount":     amount,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "paymentGatewayInitialize", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) TransactionInitialize(ctx context.Context, token, checkoutID, gatewayID string, amount float64, data map[string]interface{}) (*TransactionPayload, error) {
	var out struct {
		Payload *TransactionPayload `json:"transactionInitialize"`
	}
	err := c.do(ctx, "transactionInitialize", transactionInitializeDoc, map[string]interface{}{
		"checkoutId":       checkoutID,
		"paymentGatewayId": gatewayID,
		"amount":           amount,
		"data":             data,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "transactionInitialize", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) TransactionProcess(ctx context.Context, token, transactionID string) (*TransactionPayload, error) {
	var out struct {
		Payload *TransactionPayload `json:"transactionProcess"`
	}
	err := c.do(ctx, "transactionProcess", transactionProcessDoc, map[string]interface{}{
		"transactionId": transactionID,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "transactionProcess", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) CheckoutComplete(ctx context.Context, token, checkoutID string) (*CheckoutCompletePayload, error) {
	var out struct {
		Payload *CheckoutCompletePayload `json:"checkoutComplete"`
	}
	err := c.do(ctx, "checkoutComplete", checkoutCompleteDoc, map[string]interface{}{
		"checkoutId": checkoutID,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "checkoutComplete", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}
