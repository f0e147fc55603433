package service

import (
	"fmt"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/internal/pricing"
	"github.com/emberwick/storefront-api/internal/shopify"
	"github.com/emberwick/storefront-api/pkg/errors"
)

const (
	magicRequestTitlePrefix = "Magic Request: "
	customCandleTitle       = "Custom Candle (Made to Order)"
)

// BuildMagicDraftOrder translates the parsed recipe and user inputs into a
// draft-order payload. It is a pure function of its inputs: identical inputs
// produce an identical payload, with properties in a fixed order — Scent
// Profile, Size, then one entry per essence in recipe order (1-indexed).
func BuildMagicDraftOrder(prompt, size, candleName string, recipe *domain.CandleRecipe) shopify.DraftOrder {
	properties := make([]shopify.Property, 0, len(recipe.Essences)+2)
	properties = append(properties,
		shopify.Property{Name: "Scent Profile", Value: prompt},
		shopify.Property{Name: "Size", Value: size},
	)
	for i, essence := range recipe.Essences {
		properties = append(properties, shopify.Property{
			Name:  fmt.Sprintf("Essence %d", i+1),
			Value: essence,
		})
	}

	return shopify.DraftOrder{
		LineItems: []shopify.LineItem{
			{
				Title:      magicRequestTitlePrefix + candleName,
				Price:      pricing.MagicRequestPrice(),
				Quantity:   1,
				Custom:     true,
				Properties: properties,
			},
		},
		Note: fmt.Sprintf("Recipe: Wax - %s, Wick - %s", recipe.WaxType, recipe.WickType),
	}
}

// BuildCheckoutLineItems maps cart items onto draft-order line items. Standard
// items pass through as variant references; custom candles become synthetic
// line items priced by the per-material policy, quantity fixed at 1.
func BuildCheckoutLineItems(items []domain.CartItem) ([]shopify.LineItem, error) {
	lineItems := make([]shopify.LineItem, 0, len(items))

	for i, item := range items {
		switch item.Kind {
		case domain.CartItemStandard:
			if item.VariantID <= 0 {
				return nil, &errors.ErrValidation{Message: fmt.Sprintf("item %d: variantId is required for standard items", i)}
			}
			if item.Quantity < 1 {
				return nil, &errors.ErrValidation{Message: fmt.Sprintf("item %d: quantity must be at least 1", i)}
			}
			variantID := item.VariantID
			lineItems = append(lineItems, shopify.LineItem{
				VariantID: &variantID,
				Quantity:  item.Quantity,
			})

		case domain.CartItemCustomCandle:
			if item.Configuration == nil {
				return nil, &errors.ErrValidation{Message: fmt.Sprintf("item %d: configuration is required for custom candles", i)}
			}
			cfg := item.Configuration
			properties := make([]shopify.Property, 0, len(cfg.ScentRecipe.Materials)+2)
			properties = append(properties,
				shopify.Property{Name: "Size", Value: cfg.Size},
				shopify.Property{Name: "Jar", Value: cfg.JarType},
			)
			for j, material := range cfg.ScentRecipe.Materials {
				properties = append(properties, shopify.Property{
					Name:  fmt.Sprintf("Material %d", j+1),
					Value: material,
				})
			}
			lineItems = append(lineItems, shopify.LineItem{
				Title:      customCandleTitle,
				Price:      pricing.CustomCandlePrice(cfg.ScentRecipe.MaterialCount),
				Quantity:   1,
				Custom:     true,
				Properties: properties,
			})

		default:
			return nil, &errors.ErrValidation{Message: fmt.Sprintf("item %d: unknown item kind %q", i, item.Kind)}
		}
	}

	return lineItems, nil
}
