package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/model"
)

func newTestPaymentClient(url string) PaymentClient {
	return NewPaymentClient(&config.Payment{BaseAPIURL: url, SecretKey: "sk_test_1", TimeoutSeconds: 2})
}

func TestCreatePaymentIntentMinorUnits(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"amount":   r.PostForm.Get("amount"),
			"currency": r.PostForm.Get("currency"),
		}
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method","amount":5424,"currency":"usd"}`))
	}))
	defer srv.Close()

	c := newTestPaymentClient(srv.URL)

	intent, err := c.CreatePaymentIntent(context.Background(), decimal.NewFromFloat(54.24), "USD")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)

	assert.Equal(t, "Bearer sk_test_1", gotAuth)
	assert.Equal(t, "5424", gotForm["amount"])
	assert.Equal(t, "usd", gotForm["currency"])
}

func TestCreatePaymentIntentProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	c := newTestPaymentClient(srv.URL)

	_, err := c.CreatePaymentIntent(context.Background(), decimal.NewFromFloat(54.24), "USD")
	var derr *model.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Your card was declined.", derr.Message)
}

func TestCreatePaymentIntentOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestPaymentClient(srv.URL)

	_, err := c.CreatePaymentIntent(context.Background(), decimal.NewFromFloat(54.24), "USD")
	var terr *model.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "payment", terr.Service)
}

func TestGetPaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)
		w.Write([]byte(`{"id":"pi_1","status":"succeeded","amount":5424,"currency":"usd"}`))
	}))
	defer srv.Close()

	c := newTestPaymentClient(srv.URL)

	intent, err := c.GetPaymentIntent(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
	assert.EqualValues(t, 5424, intent.Amount)
}
