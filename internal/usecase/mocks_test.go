package usecase

import (
	"context"
	"sync"

	"github.com/waypoint/backend/internal/domain"
)

// MockAdminAPI is an in-memory implementation of domain.AdminAPI
type MockAdminAPI struct {
	mu          sync.Mutex
	products    []domain.Product
	metafields  map[string]map[string]string
	listError   error
	setError    error
	userErrors  []domain.UserError
	listFirst   int
	setCalls    int
	lastSetArgs []domain.MetafieldInput
}

func NewMockAdminAPI(products ...domain.Product) *MockAdminAPI {
	return &MockAdminAPI{
		products:   products,
		metafields: make(map[string]map[string]string),
	}
}

func (m *MockAdminAPI) ListProducts(ctx context.Context, first int) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listFirst = first
	if m.listError != nil {
		return nil, m.listError
	}

	products := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if values, ok := m.metafields[p.ID]; ok {
			if v, ok := values[domain.MetafieldKeyCustomsDescription]; ok {
				p.CustomsDescription = &v
			}
			if v, ok := values[domain.MetafieldKeyHSCode]; ok {
				p.HSCode = &v
			}
		}
		products = append(products, p)
	}
	return products, nil
}

func (m *MockAdminAPI) SetMetafields(ctx context.Context, inputs []domain.MetafieldInput) (*domain.MetafieldsSetResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setCalls++
	m.lastSetArgs = inputs
	if m.setError != nil {
		return nil, m.setError
	}
	if len(m.userErrors) > 0 {
		return &domain.MetafieldsSetResult{Metafields: []domain.Metafield{}, UserErrors: m.userErrors}, nil
	}

	result := &domain.MetafieldsSetResult{UserErrors: []domain.UserError{}}
	for _, in := range inputs {
		if m.metafields[in.OwnerID] == nil {
			m.metafields[in.OwnerID] = make(map[string]string)
		}
		m.metafields[in.OwnerID][in.Key] = in.Value
		result.Metafields = append(result.Metafields, domain.Metafield{
			ID:        in.OwnerID + "/" + in.Key,
			Namespace: in.Namespace,
			Key:       in.Key,
			Value:     in.Value,
		})
	}
	return result, nil
}

// MockCompletionClient is a mock implementation of domain.CompletionClient
type MockCompletionClient struct {
	mu           sync.Mutex
	completeFunc func(ctx context.Context, prompt string) (string, error)
	prompts      []string
}

func NewMockCompletionClient(response string, err error) *MockCompletionClient {
	return &MockCompletionClient{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return response, err
		},
	}
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.completeFunc(ctx, prompt)
}
