package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
)

type mockContent struct {
	asset *client.ImageAsset
	err   error
	calls int
}

func (m *mockContent) GetImageAsset(ctx context.Context, key string) (*client.ImageAsset, error) {
	m.calls++
	return m.asset, m.err
}

func newTestCatalogService(commerce *mockCommerce, content client.ContentClient) CatalogService {
	return NewCatalogService(
		commerce,
		content,
		&config.Commerce{Channel: "default-channel", VariantID: "variant-1"},
		&config.Content{ImageKey: "checkout-hero"},
		zap.NewNop().Sugar(),
	)
}

func testVariant(description string, media []client.ProductMedia) *client.ProductVariant {
	v := &client.ProductVariant{ID: "variant-1"}
	v.Product.Name = "Single Origin Widget"
	if description != "" {
		v.Product.Description = &description
	}
	v.Product.Media = media
	v.Pricing = &struct {
		Price *struct {
			Net *client.Money `json:"net"`
		} `json:"price"`
	}{
		Price: &struct {
			Net *client.Money `json:"net"`
		}{Net: &client.Money{Amount: 49.99, Currency: "USD"}},
	}
	return v
}

func TestProductPanel(t *testing.T) {
	commerce := newMockCommerce()
	commerce.ProductVariantFn = func(ctx context.Context, variantID, channel string) (*client.ProductVariant, error) {
		return testVariant("", []client.ProductMedia{{URL: "https://cdn.example.com/widget.png", Alt: "widget"}}), nil
	}
	content := &mockContent{}

	svc := newTestCatalogService(commerce, content)

	panel, err := svc.ProductPanel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Single Origin Widget", panel.Name)
	assert.Equal(t, 1, panel.Quantity)
	assert.Equal(t, "49.99", panel.BasePrice.Subtotal)
	assert.Equal(t, "49.99", panel.BasePrice.Total)
	require.NotNil(t, panel.Image)
	assert.Equal(t, "https://cdn.example.com/widget.png", panel.Image.URL)
	// catalog media wins; the content service is not consulted
	assert.Zero(t, content.calls)
}

func TestProductPanelContentFallback(t *testing.T) {
	commerce := newMockCommerce()
	commerce.ProductVariantFn = func(ctx context.Context, variantID, channel string) (*client.ProductVariant, error) {
		return testVariant("", nil), nil
	}
	content := &mockContent{asset: &client.ImageAsset{ImageURL: "https://images.example.com/hero.jpg", Alt: "hero"}}

	svc := newTestCatalogService(commerce, content)

	panel, err := svc.ProductPanel(context.Background())
	require.NoError(t, err)
	require.NotNil(t, panel.Image)
	assert.Equal(t, "https://images.example.com/hero.jpg", panel.Image.URL)
	assert.Equal(t, 1, content.calls)
}

func TestProductPanelContentFailureIsNonFatal(t *testing.T) {
	commerce := newMockCommerce()
	commerce.ProductVariantFn = func(ctx context.Context, variantID, channel string) (*client.ProductVariant, error) {
		return testVariant("", nil), nil
	}
	content := &mockContent{err: context.DeadlineExceeded}

	svc := newTestCatalogService(commerce, content)

	panel, err := svc.ProductPanel(context.Background())
	require.NoError(t, err)
	assert.Nil(t, panel.Image)
}

func TestFlattenDescription(t *testing.T) {
	doc := `{"blocks":[{"type":"paragraph","data":{"text":"First paragraph."}},{"type":"header","data":{"text":"skip"}},{"type":"paragraph","data":{"text":"Second paragraph."}}]}`
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", FlattenDescription(doc))
}

func TestFlattenDescriptionPassthrough(t *testing.T) {
	// not editor.js JSON: returned untouched
	assert.Equal(t, "plain text", FlattenDescription("plain text"))
	assert.Equal(t, `{"foo":1}`, FlattenDescription(`{"foo":1}`))
	assert.Equal(t, "", FlattenDescription(""))
}
