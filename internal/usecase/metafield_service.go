package usecase

import (
	"context"
	"fmt"

	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

// MetafieldService persists classifications as product metafields
type MetafieldService struct {
	logger *zap.Logger
}

// NewMetafieldService creates a metafield service
func NewMetafieldService(logger *zap.Logger) *MetafieldService {
	return &MetafieldService{logger: logger.Named("metafields")}
}

// SaveClassification upserts waypoint.customs_description and waypoint.hs_code
// on the product in one mutation. Values are passed through unvalidated;
// Shopify's user errors come back in the result for the caller to show.
func (s *MetafieldService) SaveClassification(
	ctx context.Context,
	admin domain.AdminAPI,
	productID, customsDescription, hsCode string,
) (*domain.MetafieldsSetResult, error) {
	inputs := domain.ClassificationMetafields(productID, customsDescription, hsCode)

	result, err := admin.SetMetafields(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to save metafields: %w", err)
	}

	s.logger.Info("metafields saved",
		zap.String("productId", productID),
		zap.Int("metafields", len(result.Metafields)),
		zap.Int("userErrors", len(result.UserErrors)),
	)
	return result, nil
}
