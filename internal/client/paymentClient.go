package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/model"
)

// PaymentClient is the server-side slice of the card processor API.
// The browser SDK tokenizes cards; this client only creates the payment
// intent whose client secret the SDK consumes, and reads an intent back
// when support needs to verify a charge.
type PaymentClient interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type paymentClientImpl struct {
	httpClient *http.Client
	baseAPIURL string
	secretKey  string
}

func NewPaymentClient(cfg *config.Payment) PaymentClient {
	return &paymentClientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseAPIURL: cfg.BaseAPIURL,
		secretKey:  cfg.SecretKey,
	}
}

func (c *paymentClientImpl) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	// processor wants minor units
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", cents))
	form.Set("currency", strings.ToLower(currency))
	form.Set("automatic_payment_methods[enabled]", "true")

	return c.doIntent(ctx, "createPaymentIntent", http.MethodPost,
		c.baseAPIURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
}

func (c *paymentClientImpl) GetPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	return c.doIntent(ctx, "getPaymentIntent", http.MethodGet,
		c.baseAPIURL+"/v1/payment_intents/"+intentID, nil)
}

func (c *paymentClientImpl) doIntent(ctx context.Context, op, method, endpoint string, body io.Reader) (*PaymentIntent, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Service: "payment", Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Service: "payment", Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// processor errors carry a message the user may act on (card declined)
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error.Message != "" {
			return nil, model.NewDomainError("payment", failure.Error.Message)
		}
		return nil, &model.TransportError{
			Service: "payment",
			Op:      op,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var intent PaymentIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}
	return &intent, nil
}
