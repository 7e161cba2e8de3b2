package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/model"
)

// AuthService wraps the backend's token-based account operations.
// The token itself is opaque to everything here except Identity's local
// expiry pre-check; the backend stays the source of truth.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Identity(ctx context.Context, token string) (*model.UserIdentity, error)
	Register(ctx context.Context, email, password string) error
	ConfirmAccount(ctx context.Context, email, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, token, password string) (string, error)
}

type authServiceImpl struct {
	commerce client.CommerceClient
	log      *zap.SugaredLogger
}

func NewAuthService(commerce client.CommerceClient, log *zap.SugaredLogger) AuthService {
	return &authServiceImpl{commerce: commerce, log: log}
}

// Login exchanges credentials for the backend token. Any rejection is a
// uniform "invalid credentials" domain error.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := s.commerce.TokenCreate(ctx, email, password)
	if err != nil {
		return "", err
	}
	if payload.Token == "" || len(payload.Errors) > 0 {
		return "", model.NewDomainError("", "invalid credentials")
	}
	return payload.Token, nil
}

// Identity resolves the session token to an account. A missing, expired
// or rejected token degrades to anonymous (nil identity, nil error); only
// transport failures propagate.
func (s *authServiceImpl) Identity(ctx context.Context, token string) (*model.UserIdentity, error) {
	if token == "" {
		return nil, nil
	}
	if tokenExpired(token) {
		// skip the backend round-trip for a token we can see is stale
		return nil, nil
	}

	account, err := s.commerce.Me(ctx, token)
	if err != nil {
		var gqlErr *model.GraphQLError
		if errors.As(err, &gqlErr) {
			// signature expired / invalid token: logout, not an error
			s.log.Infow("treating identity error as unauthenticated", "err", err)
			return nil, nil
		}
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return &model.UserIdentity{Email: account.Email}, nil
}

func (s *authServiceImpl) Register(ctx context.Context, email, password string) error {
	mutErrs, err := s.commerce.AccountRegister(ctx, email, password)
	if err != nil {
		return err
	}
	return mutErrs.Err()
}

func (s *authServiceImpl) ConfirmAccount(ctx context.Context, email, token string) error {
	mutErrs, err := s.commerce.ConfirmAccount(ctx, email, token)
	if err != nil {
		return err
	}
	return mutErrs.Err()
}

func (s *authServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	mutErrs, err := s.commerce.RequestPasswordReset(ctx, email)
	if err != nil {
		return err
	}
	return mutErrs.Err()
}

// ConfirmPasswordReset sets the new password and returns the fresh session
// token the backend issues with it.
func (s *authServiceImpl) ConfirmPasswordReset(ctx context.Context, email, token, password string) (string, error) {
	payload, err := s.commerce.SetPassword(ctx, email, token, password)
	if err != nil {
		return "", err
	}
	if derr := payload.Errors.Err(); derr != nil {
		return "", derr
	}
	return payload.Token, nil
}

// tokenExpired parses the token without verifying its signature (the
// backend owns the secret) purely to read the exp claim. Unparseable
// tokens are left for the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
