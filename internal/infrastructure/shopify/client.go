package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/waypoint/backend/config"
	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

// Client handles communication with the Shopify Admin GraphQL API for one shop
type Client struct {
	httpClient  *http.Client
	endpoint    string
	accessToken string
	logger      *zap.Logger
	debug       bool
}

// NewClient creates a new Shopify Admin API client.
// No client timeout is set; calls run until the transport gives up.
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{},
		endpoint:    graphQLEndpoint(cfg),
		accessToken: cfg.AccessToken,
		logger:      logger.Named("shopify"),
	}
}

// SetDebug enables logging of raw GraphQL responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// graphQLEndpoint builds https://{shop}/admin/api/{version}/graphql.json unless a base URL is configured
func graphQLEndpoint(cfg config.ShopifyConfig) string {
	if cfg.BaseURL != "" {
		return strings.TrimSuffix(cfg.BaseURL, "/") + "/graphql.json"
	}

	shopDomain := cfg.ShopDomain
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	shopDomain = strings.TrimSuffix(shopDomain, "/")

	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shopDomain, cfg.APIVersion)
}

// ListProducts returns the first products of the shop sorted by title, with their waypoint metafields
func (c *Client) ListProducts(ctx context.Context, first int) ([]domain.Product, error) {
	data, err := execute[productsData](ctx, c, ProductsWithClassificationQuery, map[string]any{
		"first": first,
	})
	if err != nil {
		return nil, err
	}

	if data.Products == nil {
		return nil, fmt.Errorf("%w: response has no products", domain.ErrShopifyAPIFailure)
	}

	products := MapToProducts(data.Products.Edges)
	c.logger.Debug("listed products", zap.Int("count", len(products)))
	return products, nil
}

// SetMetafields upserts metafields in a single metafieldsSet mutation.
// User errors are returned in the result, not as an error.
func (c *Client) SetMetafields(ctx context.Context, metafields []domain.MetafieldInput) (*domain.MetafieldsSetResult, error) {
	data, err := execute[metafieldsSetData](ctx, c, MetafieldsSetMutation, map[string]any{
		"metafields": metafields,
	})
	if err != nil {
		return nil, err
	}

	if data.MetafieldsSet == nil {
		return nil, fmt.Errorf("%w: response has no metafieldsSet payload", domain.ErrShopifyAPIFailure)
	}

	result := MapToMetafieldsSetResult(data.MetafieldsSet)
	if len(result.UserErrors) > 0 {
		c.logger.Warn("metafieldsSet reported user errors",
			zap.Int("count", len(result.UserErrors)),
			zap.String("first", result.UserErrors[0].Message),
		)
	}
	return result, nil
}

// doRequest executes a GraphQL POST with the shop's access token
func (c *Client) doRequest(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrShopifyAPIFailure, err)
	}

	return resp, nil
}

// execute runs one GraphQL operation and decodes its data into T
func execute[T any](ctx context.Context, c *Client, query string, variables map[string]any) (*T, error) {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, payload)
	if err != nil {
		c.logger.Error("request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrShopifyAPIFailure, err)
	}

	if c.debug {
		c.logger.Debug("graphql response", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("API error", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrShopifyAPIFailure, resp.StatusCode)
	}

	var gqlResp graphQLResponse[T]
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrShopifyAPIFailure, err)
	}

	if len(gqlResp.Errors) > 0 {
		messages := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("%w: graphQL errors: %s", domain.ErrShopifyAPIFailure, strings.Join(messages, "; "))
	}

	if gqlResp.Data == nil {
		return nil, fmt.Errorf("%w: response has no data", domain.ErrShopifyAPIFailure)
	}

	return gqlResp.Data, nil
}
