package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
)

// CatalogService builds the static product panel shown before and during
// checkout: name, flattened description, image and net base price for the
// one pinned variant.
type CatalogService interface {
	ProductPanel(ctx context.Context) (*dto.ProductPanel, error)
}

type catalogServiceImpl struct {
	commerce client.CommerceClient
	content  client.ContentClient
	log      *zap.SugaredLogger

	channel   string
	variantID string
	imageKey  string
}

func NewCatalogService(commerce client.CommerceClient, content client.ContentClient, cfg *config.Commerce, contentCfg *config.Content, log *zap.SugaredLogger) CatalogService {
	return &catalogServiceImpl{
		commerce:  commerce,
		content:   content,
		log:       log,
		channel:   cfg.Channel,
		variantID: cfg.VariantID,
		imageKey:  contentCfg.ImageKey,
	}
}

func (s *catalogServiceImpl) ProductPanel(ctx context.Context) (*dto.ProductPanel, error) {
	variant, err := s.commerce.ProductVariant(ctx, s.variantID, s.channel)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, model.NewDomainError("", "product variant not found")
	}

	panel := &dto.ProductPanel{
		Name:     variant.Product.Name,
		Quantity: 1,
	}
	if variant.Product.Description != nil {
		panel.Description = FlattenDescription(*variant.Product.Description)
	}

	var net decimal.Decimal
	currency := ""
	if variant.Pricing != nil && variant.Pricing.Price != nil && variant.Pricing.Price.Net != nil {
		net = decimal.NewFromFloat(variant.Pricing.Price.Net.Amount)
		currency = variant.Pricing.Price.Net.Currency
	}
	panel.BasePrice = ProjectProductPricing(net, currency)

	if len(variant.Product.Media) > 0 {
		panel.Image = &dto.Image{
			URL: variant.Product.Media[0].URL,
			Alt: variant.Product.Media[0].Alt,
		}
	} else if s.content != nil {
		// fall back to the content service's named asset; display-only,
		// so a failed lookup just leaves the panel without an image
		asset, err := s.content.GetImageAsset(ctx, s.imageKey)
		if err != nil {
			s.log.Warnw("content image lookup failed", "key", s.imageKey, "err", err)
		} else if asset != nil {
			panel.Image = &dto.Image{URL: asset.ImageURL, Alt: asset.Alt}
		}
	}

	return panel, nil
}

// editorDocument is the subset of the editor.js format the backend stores
// product descriptions in. Only paragraph blocks are rendered.
type editorDocument struct {
	Blocks []struct {
		Type string `json:"type"`
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	} `json:"blocks"`
}

// FlattenDescription converts an editor.js JSON document into plain text,
// paragraph blocks joined by blank lines. A string that is not valid
// editor.js JSON is returned as-is.
func FlattenDescription(description string) string {
	if description == "" {
		return ""
	}

	var doc editorDocument
	if err := json.Unmarshal([]byte(description), &doc); err != nil || doc.Blocks == nil {
		return description
	}

	var paragraphs []string
	for _, block := range doc.Blocks {
		if block.Type == "paragraph" && block.Data.Text != "" {
			paragraphs = append(paragraphs, block.Data.Text)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
