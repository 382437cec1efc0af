package usecase

import (
	"context"
	"fmt"

	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

// EmptyCatalogMessage is shown when the shop has no products
const EmptyCatalogMessage = "No products found"

// Listing is the product page returned on dashboard load
type Listing struct {
	Products []ProductRow `json:"products"`
	Empty    bool         `json:"empty"`
	Message  string       `json:"message,omitempty"`
}

// CatalogService lists the shop's products for the dashboard
type CatalogService struct {
	logger *zap.Logger
}

// NewCatalogService creates a catalog service
func NewCatalogService(logger *zap.Logger) *CatalogService {
	return &CatalogService{logger: logger.Named("catalog")}
}

// ListProducts fetches the first page of products sorted by title.
// Any failure is returned as is; there is no partial listing.
func (s *CatalogService) ListProducts(ctx context.Context, admin domain.AdminAPI) (*Listing, error) {
	products, err := admin.ListProducts(ctx, domain.ProductPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	listing := &Listing{Products: make([]ProductRow, 0, len(products))}
	for _, product := range products {
		listing.Products = append(listing.Products, NewProductRow(product))
	}

	if len(listing.Products) == 0 {
		listing.Empty = true
		listing.Message = EmptyCatalogMessage
	}

	s.logger.Debug("listing built", zap.Int("products", len(listing.Products)))
	return listing, nil
}
