package service

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
)

// ProfileService reads and updates the signed-in account. Updates are a
// sequence of independent sub-mutations (name, shipping address, password)
// applied in that order; the first failure aborts the rest and already
// applied sub-mutations stay applied. The supplied current password is
// re-verified against the backend before anything is touched.
type ProfileService interface {
	Get(ctx context.Context, token string) (*dto.Profile, error)
	Update(ctx context.Context, token string, update dto.ProfileUpdate) error
}

type profileServiceImpl struct {
	commerce  client.CommerceClient
	validator *validatorv10.Validate
	log       *zap.SugaredLogger
}

func NewProfileService(commerce client.CommerceClient, v *validatorv10.Validate, log *zap.SugaredLogger) ProfileService {
	return &profileServiceImpl{commerce: commerce, validator: v, log: log}
}

func (s *profileServiceImpl) Get(ctx context.Context, token string) (*dto.Profile, error) {
	if token == "" {
		return nil, model.ErrAuthExpired
	}

	account, err := s.commerce.Profile(ctx, token)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, model.ErrAuthExpired
	}

	profile := &dto.Profile{
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}
	if account.DefaultShippingAddress != nil {
		addr := account.DefaultShippingAddress.Address()
		profile.ShippingAddress = &addr
		profile.AddressID = account.DefaultShippingAddress.ID
	}
	return profile, nil
}

func (s *profileServiceImpl) Update(ctx context.Context, token string, update dto.ProfileUpdate) error {
	if token == "" {
		return model.ErrAuthExpired
	}
	if err := s.validator.Struct(update); err != nil {
		return err
	}
	if update.ShippingAddress != nil {
		if err := s.validator.Struct(*update.ShippingAddress); err != nil {
			return err
		}
	}

	// load the profile first: it supplies the email for the password check
	// and the default address id that decides the upsert path
	profile, err := s.Get(ctx, token)
	if err != nil {
		return err
	}

	// re-verify the current password immediately before applying anything,
	// regardless of which fields changed
	verify, err := s.commerce.TokenCreate(ctx, profile.Email, update.CurrentPassword)
	if err != nil {
		return err
	}
	if verify.Token == "" || len(verify.Errors) > 0 {
		return model.NewDomainError("currentPassword", "invalid credentials")
	}

	// 1. name
	if update.FirstName != nil || update.LastName != nil {
		mutErrs, err := s.commerce.AccountUpdate(ctx, token, update.FirstName, update.LastName)
		if err != nil {
			return err
		}
		if derr := mutErrs.Err(); derr != nil {
			return derr
		}
	}

	// 2. shipping address
	if update.ShippingAddress != nil {
		if err := s.upsertShippingAddress(ctx, token, profile.AddressID, *update.ShippingAddress); err != nil {
			return err
		}
	}

	// 3. password
	if update.Password != nil {
		mutErrs, err := s.commerce.PasswordChange(ctx, token, update.CurrentPassword, update.Password.NewPassword)
		if err != nil {
			return err
		}
		if derr := mutErrs.Err(); derr != nil {
			return derr
		}
	}

	return nil
}

// upsertShippingAddress updates the known default address in place, or
// creates one and sets it default in two calls when none exists yet.
func (s *profileServiceImpl) upsertShippingAddress(ctx context.Context, token, addressID string, form dto.AddressForm) error {
	addr := form.Address()
	if addr.Country == "" {
		addr.Country = "US"
	}

	if addressID != "" {
		mutErrs, err := s.commerce.AccountAddressUpdate(ctx, token, addressID, addr)
		if err != nil {
			return err
		}
		return mutErrs.Err()
	}

	payload, err := s.commerce.AccountAddressCreate(ctx, token, addr)
	if err != nil {
		return err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return derr
	}
	if payload.Address == nil || payload.Address.ID == "" {
		return model.NewDomainError("shippingAddress", "failed to create address")
	}

	mutErrs, err := s.commerce.AccountSetDefaultAddress(ctx, token, payload.Address.ID)
	if err != nil {
		return err
	}
	return mutErrs.Err()
}
