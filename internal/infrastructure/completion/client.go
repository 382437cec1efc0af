package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/waypoint/backend/config"
	"github.com/waypoint/backend/internal/domain"
	"go.uber.org/zap"
)

// Client sends single-turn prompts to an OpenAI-compatible chat completion endpoint
type Client struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a completion client. The API key is required.
// SDK retries are disabled so a failed call surfaces immediately.
func NewClient(cfg config.AIConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("AI API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("AI model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		logger: logger.Named("completion"),
	}, nil
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message with provider-default
// generation parameters and returns the raw text of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			c.logger.Error("provider returned error", zap.Int("status", apiErr.StatusCode), zap.Error(err))
			return "", fmt.Errorf("%w: status %d", domain.ErrCompletionFailure, apiErr.StatusCode)
		}
		c.logger.Error("request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrCompletionFailure)
	}

	return resp.Choices[0].Message.Content, nil
}
