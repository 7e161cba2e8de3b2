package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthExpired means the stored token no longer authenticates; the
	// caller should degrade to the anonymous experience.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrSignInRequired guards operations that need a signed-in identity.
	ErrSignInRequired = errors.New("sign in required")

	// ErrBusy means another step of the same checkout is in flight.
	ErrBusy = errors.New("checkout step already in progress")

	ErrCheckoutNotFound  = errors.New("checkout not found")
	ErrInvalidTransition = errors.New("operation not allowed in current checkout state")
)

// TransportError wraps an HTTP-layer failure against a remote service.
// The remote state is unknown but no confirmed change happened on our
// side, so the caller may retry the same step.
type TransportError struct {
	Service string
	Op      string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is a top-level errors list on an otherwise successful HTTP
// response: a malformed query or schema mismatch, an integration defect
// rather than a user mistake. Detail is logged server-side and never
// shown to the user.
type GraphQLError struct {
	Op       string
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("graphql %s: %s", e.Op, strings.Join(e.Messages, "; "))
}

// DomainError is an expected business outcome reported by a backend
// mutation (out of stock, invalid credentials, rejected address). Its
// message is meant for the user verbatim.
type DomainError struct {
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewDomainError(field string, messages ...string) *DomainError {
	return &DomainError{Field: field, Message: strings.Join(messages, "; ")}
}
