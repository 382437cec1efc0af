package domain

import "context"

// AdminAPI is the capability an authenticated merchant session grants
// for calling the Shopify Admin API.
type AdminAPI interface {
	ListProducts(ctx context.Context, first int) ([]Product, error)
	SetMetafields(ctx context.Context, metafields []MetafieldInput) (*MetafieldsSetResult, error)
}

// CompletionClient sends a single-turn prompt to a generative model and returns its text
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
