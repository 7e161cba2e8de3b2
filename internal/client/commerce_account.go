package client

import (
	"context"

	"storefront-gateway/internal/model"
)

// --- ACCOUNT PAYLOADS ---

type TokenCreatePayload struct {
	Token  string         `json:"token"`
	Errors MutationErrors `json:"errors"`
}

// AddressNode is the backend's stored address with its id and nested
// country object (input and output shapes differ on purpose).
type AddressNode struct {
	ID         string `json:"id"`
	Street1    string `json:"streetAddress1"`
	Street2    string `json:"streetAddress2"`
	City       string `json:"city"`
	Region     string `json:"countryArea"`
	PostalCode string `json:"postalCode"`
	Country    struct {
		Code string `json:"code"`
	} `json:"country"`
}

// Address flattens the node into the input shape.
func (n *AddressNode) Address() model.Address {
	return model.Address{
		Street1:    n.Street1,
		Street2:    n.Street2,
		City:       n.City,
		Region:     n.Region,
		PostalCode: n.PostalCode,
		Country:    n.Country.Code,
	}
}

type Account struct {
	Email                  string       `json:"email"`
	FirstName              string       `json:"firstName"`
	LastName               string       `json:"lastName"`
	DefaultShippingAddress *AddressNode `json:"defaultShippingAddress"`
}

type AddressCreatePayload struct {
	Address *struct {
		ID string `json:"id"`
	} `json:"address"`
	Errors MutationErrors `json:"errors"`
}

// --- ACCOUNT OPERATIONS ---

func (c *commerceClientImpl) TokenCreate(ctx context.Context, email, password string) (*TokenCreatePayload, error) {
	var out struct {
		Payload *TokenCreatePayload `json:"tokenCreate"`
	}
	err := c.do(ctx, "tokenCreate", tokenCreateDoc, map[string]interface{}{
		"email":    email,
		"password": password,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "tokenCreate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

// Me runs the session-bound identity query. A nil account means the token
// did not resolve to a user; the caller decides what anonymity means.
func (c *commerceClientImpl) Me(ctx context.Context, token string) (*Account, error) {
	var out struct {
		Me *Account `json:"me"`
	}
	if err := c.do(ctx, "me", meDoc, nil, token, &out); err != nil {
		return nil, err
	}
	return out.Me, nil
}

func (c *commerceClientImpl) Profile(ctx context.Context, token string) (*Account, error) {
	var out struct {
		Me *Account `json:"me"`
	}
	if err := c.do(ctx, "profile", profileDoc, nil, token, &out); err != nil {
		return nil, err
	}
	return out.Me, nil
}

func (c *commerceClientImpl) AccountUpdate(ctx context.Context, token string, firstName, lastName *string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"accountUpdate"`
	}
	err := c.do(ctx, "accountUpdate", accountUpdateDoc, map[string]interface{}{
		"firstName": firstName,
		"lastName":  lastName,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "accountUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) AccountAddressCreate(ctx context.Context, token string, address model.Address) (*AddressCreatePayload, error) {
	var out struct {
		Payload *AddressCreatePayload `json:"accountAddressCreate"`
	}
	err := c.do(ctx, "accountAddressCreate", accountAddressCreateDoc, map[string]interface{}{
		"input": address,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "accountAddressCreate", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

func (c *commerceClientImpl) AccountAddressUpdate(ctx context.Context, token, addressID string, address model.Address) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"accountAddressUpdate"`
	}
	err := c.do(ctx, "accountAddressUpdate", accountAddressUpdateDoc, map[string]interface{}{
		"id":    addressID,
		"input": address,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "accountAddressUpdate", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) AccountSetDefaultAddress(ctx context.Context, token, addressID string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"accountSetDefaultAddress"`
	}
	err := c.do(ctx, "accountSetDefaultAddress", accountSetDefaultAddressDoc, map[string]interface{}{
		"id": addressID,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "accountSetDefaultAddress", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) PasswordChange(ctx context.Context, token, oldPassword, newPassword string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"passwordChange"`
	}
	err := c.do(ctx, "passwordChange", passwordChangeDoc, map[string]interface{}{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}, token, &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "passwordChange", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) AccountRegister(ctx context.Context, email, password string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"accountRegister"`
	}
	err := c.do(ctx, "accountRegister", accountRegisterDoc, map[string]interface{}{
		"email":    email,
		"password": password,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "accountRegister", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) ConfirmAccount(ctx context.Context, email, token string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"confirmAccount"`
	}
	err := c.do(ctx, "confirmAccount", confirmAccountDoc, map[string]interface{}{
		"email": email,
		"token": token,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "confirmAccount", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) RequestPasswordReset(ctx context.Context, email string) (MutationErrors, error) {
	var out struct {
		Payload *struct {
			Errors MutationErrors `json:"errors"`
		} `json:"requestPasswordReset"`
	}
	err := c.do(ctx, "requestPasswordReset", requestPasswordResetDoc, map[string]interface{}{
		"email": email,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "requestPasswordReset", Messages: []string{"missing payload"}}
	}
	return out.Payload.Errors, nil
}

func (c *commerceClientImpl) SetPassword(ctx context.Context, email, token, password string) (*TokenCreatePayload, error) {
	var out struct {
		Payload *TokenCreatePayload `json:"setPassword"`
	}
	err := c.do(ctx, "setPassword", setPasswordDoc, map[string]interface{}{
		"email":    email,
		"token":    token,
		"password": password,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	if out.Payload == nil {
		return nil, &model.GraphQLError{Op: "setPassword", Messages: []string{"missing payload"}}
	}
	return out.Payload, nil
}

// --- CATALOG ---

type ProductMedia struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type ProductVariant struct {
	ID      string `json:"id"`
	Pricing *struct {
		Price *struct {
			Net *Money `json:"net"`
		} `json:"price"`
	} `json:"pricing"`
	Product struct {
		Name        string         `json:"name"`
		Description *string        `json:"description"`
		Media       []ProductMedia `json:"media"`
	} `json:"product"`
}

func (c *commerceClientImpl) ProductVariant(ctx context.Context, variantID, channel string) (*ProductVariant, error) {
	var out struct {
		ProductVariant *ProductVariant `json:"productVariant"`
	}
	err := c.do(ctx, "productVariant", productVariantDoc, map[string]interface{}{
		"variantId": variantID,
		"channel":   channel,
	}, "", &out)
	if err != nil {
		return nil, err
	}
	return out.ProductVariant, nil
}
