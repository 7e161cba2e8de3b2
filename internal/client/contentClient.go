package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/model"
)

// ContentClient reads named image assets from the content service.
// Display-only data: a miss or a malformed entry is (nil, nil), never an
// error the checkout flow has to care about.
type ContentClient interface {
	GetImageAsset(ctx context.Context, key string) (*ImageAsset, error)
}

type ImageAsset struct {
	ImageURL string
	Alt      string
}

type contentClientImpl struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewContentClient(cfg *config.Content) ContentClient {
	return &contentClientImpl{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
	}
}

func (c *contentClientImpl) GetImageAsset(ctx context.Context, key string) (*ImageAsset, error) {
	endpoint := fmt.Sprintf("%s/entries?content_type=imageAsset&fields.key=%s&limit=1",
		c.baseURL, url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Service: "content", Op: "getImageAsset", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &model.TransportError{
			Service: "content",
			Op:      "getImageAsset",
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	var body struct {
		Items []struct {
			Fields struct {
				ImageURL string `json:"imageUrl"`
				Alt      string `json:"alt"`
			} `json:"fields"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode asset response: %w", err)
	}

	if len(body.Items) == 0 || body.Items[0].Fields.ImageURL == "" {
		return nil, nil
	}

	return &ImageAsset{
		ImageURL: body.Items[0].Fields.ImageURL,
		Alt:      body.Items[0].Fields.Alt,
	}, nil
}
