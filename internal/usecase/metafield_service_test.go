package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

func TestMetafieldService_SaveClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("writes both metafields in one mutation", func(t *testing.T) {
		admin := NewMockAdminAPI(domain.Product{ID: "gid://shopify/Product/1", Title: "Earbuds"})
		svc := NewMetafieldService(zap.NewNop())

		result, err := svc.SaveClassification(ctx, admin, "gid://shopify/Product/1", "Wireless audio earphones", "851830")

		require.NoError(t, err)
		assert.Equal(t, 1, admin.setCalls)
		assert.Equal(t, domain.ClassificationMetafields("gid://shopify/Product/1", "Wireless audio earphones", "851830"), admin.lastSetArgs)
		require.Len(t, result.Metafields, 2)
		assert.Empty(t, result.UserErrors)
	})

	t.Run("empty values are passed through", func(t *testing.T) {
		admin := NewMockAdminAPI()
		svc := NewMetafieldService(zap.NewNop())

		_, err := svc.SaveClassification(ctx, admin, "gid://shopify/Product/1", "", "")

		require.NoError(t, err)
		assert.Equal(t, "", admin.lastSetArgs[0].Value)
		assert.Equal(t, "", admin.lastSetArgs[1].Value)
	})

	t.Run("user errors are returned as data", func(t *testing.T) {
		admin := NewMockAdminAPI()
		admin.userErrors = []domain.UserError{{Field: []string{"metafields", "0", "ownerId"}, Message: "Owner does not exist"}}
		svc := NewMetafieldService(zap.NewNop())

		result, err := svc.SaveClassification(ctx, admin, "bogus", "desc", "123456")

		require.NoError(t, err)
		require.Len(t, result.UserErrors, 1)
		assert.Equal(t, "Owner does not exist", result.UserErrors[0].Message)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		admin := NewMockAdminAPI()
		admin.setError = fmt.Errorf("%w: status 502", domain.ErrShopifyAPIFailure)
		svc := NewMetafieldService(zap.NewNop())

		result, err := svc.SaveClassification(ctx, admin, "gid://shopify/Product/1", "desc", "123456")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrShopifyAPIFailure)
	})
}

func TestSaveThenList_RoundTripAndIdempotence(t *testing.T) {
	ctx := context.Background()
	admin := NewMockAdminAPI(domain.Product{ID: "gid://shopify/Product/1", Title: "Wireless Bluetooth Earbuds"})
	writer := NewMetafieldService(zap.NewNop())
	catalog := NewCatalogService(zap.NewNop())

	description := "Wireless audio earphones (in-ear), 2 pcs"
	for i := 0; i < 2; i++ {
		result, err := writer.SaveClassification(ctx, admin, "gid://shopify/Product/1", description, "851830")
		require.NoError(t, err)
		assert.Empty(t, result.UserErrors)
	}

	listing, err := catalog.ListProducts(ctx, admin)
	require.NoError(t, err)
	require.Len(t, listing.Products, 1)

	row := listing.Products[0]
	assert.Equal(t, domain.RowSaved, row.State)
	assert.Equal(t, description, row.CustomsDescription)
	assert.Equal(t, "851830", row.HSCode)
	assert.Len(t, admin.metafields["gid://shopify/Product/1"], 2)
}
