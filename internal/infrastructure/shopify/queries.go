package shopify

// ProductsWithClassificationQuery fetches the first page of products sorted by
// title together with their waypoint metafields.
const ProductsWithClassificationQuery = `
query productsWithClassification($first: Int!) {
  products(first: $first, sortKey: TITLE, reverse: false) {
    edges {
      node {
        id
        title
        handle
        customsDescription: metafield(namespace: "waypoint", key: "customs_description") {
          value
        }
        hsCode: metafield(namespace: "waypoint", key: "hs_code") {
          value
        }
      }
    }
  }
}
`

// MetafieldsSetMutation upserts metafields on their owners
const MetafieldsSetMutation = `
mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields {
      id
      key
      namespace
      value
    }
    userErrors {
      field
      message
    }
  }
}
`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type productsData struct {
	Products *productConnection `json:"products"`
}

type productConnection struct {
	Edges []productEdge `json:"edges"`
}

type productEdge struct {
	Node productNode `json:"node"`
}

type productNode struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Handle             string          `json:"handle"`
	CustomsDescription *metafieldValue `json:"customsDescription"`
	HSCode             *metafieldValue `json:"hsCode"`
}

type metafieldValue struct {
	Value string `json:"value"`
}

type metafieldsSetData struct {
	MetafieldsSet *metafieldsSetPayload `json:"metafieldsSet"`
}

type metafieldsSetPayload struct {
	Metafields []metafieldNode `json:"metafields"`
	UserErrors []userErrorNode `json:"userErrors"`
}

type metafieldNode struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
}

type userErrorNode struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
