package shopify

import "github.com/waypoint/backend/internal/domain"

// MapToProducts converts product edges to domain products, keeping Shopify's order
func MapToProducts(edges []productEdge) []domain.Product {
	products := make([]domain.Product, 0, len(edges))
	for _, edge := range edges {
		products = append(products, mapProduct(edge.Node))
	}
	return products
}

func mapProduct(node productNode) domain.Product {
	return domain.Product{
		ID:                 node.ID,
		Title:              node.Title,
		Handle:             node.Handle,
		CustomsDescription: metafieldString(node.CustomsDescription),
		HSCode:             metafieldString(node.HSCode),
	}
}

// metafieldString returns nil for a metafield that was never set
func metafieldString(m *metafieldValue) *string {
	if m == nil {
		return nil
	}
	v := m.Value
	return &v
}

// MapToMetafieldsSetResult converts the mutation payload, never returning nil slices
func MapToMetafieldsSetResult(payload *metafieldsSetPayload) *domain.MetafieldsSetResult {
	result := &domain.MetafieldsSetResult{
		Metafields: make([]domain.Metafield, 0, len(payload.Metafields)),
		UserErrors: make([]domain.UserError, 0, len(payload.UserErrors)),
	}
	for _, m := range payload.Metafields {
		result.Metafields = append(result.Metafields, domain.Metafield{
			ID:        m.ID,
			Namespace: m.Namespace,
			Key:       m.Key,
			Value:     m.Value,
		})
	}
	for _, ue := range payload.UserErrors {
		result.UserErrors = append(result.UserErrors, domain.UserError{
			Field:   ue.Field,
			Message: ue.Message,
		})
	}
	return result
}
