package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/model"
)

func newTestCommerceClient(url string) CommerceClient {
	return NewCommerceClient(&config.Commerce{APIURL: url, TimeoutSeconds: 2}, zap.NewNop().Sugar())
}

func TestCommerceClientCheckoutCreate(t *testing.T) {
	var gotBody struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"checkoutCreate":{"checkout":{"id":"chk_1","totalPrice":{"net":{"amount":49.99,"currency":"USD"}}},"errors":[]}}}`))
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	payload, err := c.CheckoutCreate(context.Background(), "default-channel", "variant-1", 1)
	require.NoError(t, err)
	require.NotNil(t, payload.Checkout)
	assert.Equal(t, "chk_1", payload.Checkout.ID)
	assert.InDelta(t, 49.99, payload.Checkout.TotalPrice.Net.Amount, 0.0001)
	assert.Empty(t, payload.Errors)

	// anonymous operation carries no bearer token
	assert.Empty(t, gotAuth)
	assert.Contains(t, gotBody.Query, "checkoutCreate")
	assert.Equal(t, "default-channel", gotBody.Variables["channel"])
}

func TestCommerceClientMutationErrorsStayInPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"checkoutCreate":{"checkout":null,"errors":[{"field":"quantity","message":"Insufficient product stock."}]}}}`))
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	// a mutation-level errors list is not a client error; the caller folds it
	payload, err := c.CheckoutCreate(context.Background(), "default-channel", "variant-1", 1)
	require.NoError(t, err)
	require.Len(t, payload.Errors, 1)

	var derr *model.DomainError
	require.ErrorAs(t, payload.Errors.Err(), &derr)
	assert.Equal(t, "quantity", derr.Field)
	assert.Equal(t, "Insufficient product stock.", derr.Message)
}

func TestCommerceClientTopLevelErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"Syntax Error: Unexpected Name"}]}`))
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	_, err := c.CheckoutCreate(context.Background(), "default-channel", "variant-1", 1)
	var gerr *model.GraphQLError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "checkoutCreate", gerr.Op)
	assert.Contains(t, gerr.Messages, "Syntax Error: Unexpected Name")
}

func TestCommerceClientHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	_, err := c.CheckoutCreate(context.Background(), "default-channel", "variant-1", 1)
	var terr *model.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "commerce", terr.Service)
}

func TestCommerceClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestCommerceClient(srv.URL)

	_, err := c.CheckoutCreate(context.Background(), "default-channel", "variant-1", 1)
	var terr *model.TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestCommerceClientForwardsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"me":{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}}}`))
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	account, err := c.Me(context.Background(), "token-1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestCommerceClientNilAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"me":null}}`))
	}))
	defer srv.Close()

	c := newTestCommerceClient(srv.URL)

	account, err := c.Me(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Nil(t, account)
}
