package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

const classificationPromptTemplate = `You are an expert international customs agent preparing a customs declaration for an e-commerce product.
Using the product title "%s", do two things:
1. Write a concise, literal and accurate description of the product suitable for a customs form. Do not use marketing language.
2. Determine the most likely 6-digit Harmonized System (HS) code for the product.

Respond with a single minified JSON object and nothing else. It must have exactly two string keys: "customs_description" and "hs_code".`

// ClassificationService asks a generative model for a product's customs description and HS code
type ClassificationService struct {
	client domain.CompletionClient
	logger *zap.Logger
}

// NewClassificationService creates a classification service
func NewClassificationService(client domain.CompletionClient, logger *zap.Logger) *ClassificationService {
	return &ClassificationService{
		client: client,
		logger: logger.Named("classifier"),
	}
}

// Classify builds the prompt for title, calls the model once and parses its answer.
// productID is not validated; it only tags the result.
func (s *ClassificationService) Classify(ctx context.Context, productID, title string) (*domain.ClassificationResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: product title is required", domain.ErrInvalidRequest)
	}

	text, err := s.client.Complete(ctx, BuildPrompt(title))
	if err != nil {
		s.logger.Error("AI classification failed", zap.String("productId", productID), zap.Error(err))
		if errors.Is(err, domain.ErrCompletionFailure) {
			return nil, fmt.Errorf("%w: %w", domain.ErrClassificationFailed, err)
		}
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrClassificationFailed, domain.ErrCompletionFailure, err)
	}

	result, err := ParseClassification(productID, text)
	if err != nil {
		s.logger.Warn("AI response rejected",
			zap.String("productId", productID),
			zap.String("response", text),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrClassificationFailed, err)
	}

	s.logger.Info("AI classification successful",
		zap.String("productId", productID),
		zap.String("title", title),
		zap.String("hsCode", result.HSCode),
	)
	return result, nil
}

// BuildPrompt returns the customs classification instruction for a product title
func BuildPrompt(title string) string {
	return fmt.Sprintf(classificationPromptTemplate, title)
}

// ParseClassification parses model output that must be exactly a JSON object
// holding string "customs_description" and "hs_code" values. Surrounding
// whitespace is tolerated; code fences, prose and missing keys are not.
func ParseClassification(productID, text string) (*domain.ClassificationResult, error) {
	text = strings.TrimSpace(text)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: response is not valid JSON", domain.ErrClassificationParse)
	}

	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: response is not a JSON object", domain.ErrClassificationParse)
	}

	description, err := requiredString(parsed, domain.MetafieldKeyCustomsDescription)
	if err != nil {
		return nil, err
	}
	hsCode, err := requiredString(parsed, domain.MetafieldKeyHSCode)
	if err != nil {
		return nil, err
	}

	return &domain.ClassificationResult{
		ProductID:          productID,
		CustomsDescription: description,
		HSCode:             hsCode,
	}, nil
}

func requiredString(obj gjson.Result, key string) (string, error) {
	value := obj.Get(key)
	if !value.Exists() {
		return "", fmt.Errorf("%w: missing key %q", domain.ErrClassificationParse, key)
	}
	if value.Type != gjson.String {
		return "", fmt.Errorf("%w: key %q is not a string", domain.ErrClassificationParse, key)
	}
	return value.String(), nil
}
