package domain

// Metafield namespace, keys and type written by this app
const (
	MetafieldNamespace             = "waypoint"
	MetafieldKeyCustomsDescription = "customs_description"
	MetafieldKeyHSCode             = "hs_code"
	MetafieldTypeSingleLineText    = "single_line_text_field"

	// ProductPageSize is the number of products requested per listing
	ProductPageSize = 10
)

// Product is a Shopify product with its current classification metafields.
// CustomsDescription and HSCode are nil when the metafield was never set.
type Product struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Handle             string  `json:"handle"`
	CustomsDescription *string `json:"customsDescription,omitempty"`
	HSCode             *string `json:"hsCode,omitempty"`
}

// HasClassification reports whether any waypoint metafield exists on the product
func (p Product) HasClassification() bool {
	return p.CustomsDescription != nil || p.HSCode != nil
}

// ClassificationResult is the AI-derived customs data for one product
type ClassificationResult struct {
	ProductID          string `json:"productId"`
	CustomsDescription string `json:"customs_description"`
	HSCode             string `json:"hs_code"`
}

// MetafieldInput is one entry of a metafieldsSet mutation
type MetafieldInput struct {
	OwnerID   string `json:"ownerId"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

// Metafield is a metafield as confirmed by Shopify
type Metafield struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// UserError is a field-level validation error reported by Shopify
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// MetafieldsSetResult is the payload of a metafieldsSet mutation
type MetafieldsSetResult struct {
	Metafields []Metafield `json:"metafields"`
	UserErrors []UserError `json:"userErrors"`
}

// ClassificationMetafields builds the two metafield inputs for a product
func ClassificationMetafields(productID, customsDescription, hsCode string) []MetafieldInput {
	return []MetafieldInput{
		{
			OwnerID:   productID,
			Namespace: MetafieldNamespace,
			Key:       MetafieldKeyCustomsDescription,
			Type:      MetafieldTypeSingleLineText,
			Value:     customsDescription,
		},
		{
			OwnerID:   productID,
			Namespace: MetafieldNamespace,
			Key:       MetafieldKeyHSCode,
			Type:      MetafieldTypeSingleLineText,
			Value:     hsCode,
		},
	}
}
