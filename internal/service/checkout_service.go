package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/internal/shopify"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// CheckoutService maps a cart onto a draft order and submits it. This is the
// thin, non-AI path: no generation, no parsing, just a 1:1 line-item mapping.
type CheckoutService struct {
	orders DraftOrderCreator
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orders DraftOrderCreator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		logger: logger,
	}
}

// Submit creates a draft order from the cart and returns its invoice URL, the
// durable result the client needs to continue checkout.
func (s *CheckoutService) Submit(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, &errors.ErrValidation{Message: "cart items are required"}
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		cartItem := domain.CartItem{
			Kind:      domain.CartItemKind(item.Kind),
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		}
		if item.Configuration != nil {
			cartItem.Configuration = &domain.CustomCandleConfig{
				Size:    item.Configuration.Size,
				JarType: item.Configuration.JarType,
				ScentRecipe: domain.ScentRecipe{
					Materials:     item.Configuration.ScentRecipe.Materials,
					MaterialCount: item.Configuration.ScentRecipe.MaterialCount,
				},
			}
		}
		items = append(items, cartItem)
	}

	lineItems, err := BuildCheckoutLineItems(items)
	if err != nil {
		return nil, err
	}

	result, err := s.orders.CreateDraftOrder(ctx, shopify.DraftOrder{LineItems: lineItems})
	if err != nil {
		s.logger.Error("Checkout draft order creation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Checkout draft order created",
		zap.Int64("draft_order_id", result.ID),
		zap.Int("item_count", len(lineItems)),
	)

	return &CheckoutResult{
		DraftOrderID: result.ID,
		InvoiceURL:   result.InvoiceURL,
	}, nil
}
