package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnauthenticated is returned when a request has no valid merchant session
	ErrUnauthenticated = errors.New("merchant session not authenticated")

	// ErrShopifyAPIFailure is returned when a Shopify Admin API call fails or returns no data
	ErrShopifyAPIFailure = errors.New("Shopify API request failed")

	// ErrClassificationFailed wraps every failure of the classification path
	ErrClassificationFailed = errors.New("classification failed")

	// ErrCompletionFailure is returned when the AI provider call fails
	ErrCompletionFailure = errors.New("AI completion request failed")

	// ErrClassificationParse is returned when AI output is not the expected two-key JSON object
	ErrClassificationParse = errors.New("AI output is not a valid classification")

	// ErrProductMismatch is returned when a classification is applied to another product's row
	ErrProductMismatch = errors.New("classification belongs to a different product")

	// ErrInvalidTransition is returned when a row event is not allowed in its current state
	ErrInvalidTransition = errors.New("invalid row state transition")
)
