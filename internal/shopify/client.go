package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/config"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// Client calls the Shopify admin REST API. The shop domain and access token
// are secrets resolved through the loader at call time, not at construction.
type Client struct {
	loader     *secrets.Loader
	apiVersion string
	httpClient *http.Client
	logger     *zap.Logger

	// baseURL overrides the https://<shop-domain> prefix in tests.
	baseURL string
}

// NewClient creates a new Shopify admin REST client
func NewClient(loader *secrets.Loader, cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	return &Client{
		loader:     loader,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// normalizeShopDomain removes https://, http://, and trailing slashes
func normalizeShopDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimSuffix(domain, "/")
}

// CreateDraftOrder POSTs the draft order to the admin order-creation endpoint.
// A single attempt: any non-2xx response is returned as ErrUpstreamCommerce
// with the response body captured for diagnostics, and no retry is made.
func (c *Client) CreateDraftOrder(ctx context.Context, draft DraftOrder) (*DraftOrderResult, error) {
	creds, err := c.loader.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	base := c.baseURL
	if base == "" {
		base = "https://" + normalizeShopDomain(creds.ShopifyShopDomain)
	}
	url := fmt.Sprintf("%s/admin/api/%s/draft_orders.json", base, c.apiVersion)

	jsonData, err := json.Marshal(draftOrderRequest{DraftOrder: draft})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", creds.ShopifyAccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ErrUpstreamCommerce{StatusCode: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Shopify draft order creation failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, &errors.ErrUpstreamCommerce{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result draftOrderResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, body: %s", err, string(body))
	}
	if result.DraftOrder.ID == 0 {
		return nil, fmt.Errorf("draft order response has no id, body: %s", string(body))
	}

	return &result.DraftOrder, nil
}
