package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"cryptonews/internal/model"
)

// AnthropicClient is the alternate enrichment backend, used when only an
// Anthropic key is configured. Same contract as OpenAIClient.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
	logger *slog.Logger
}

func NewAnthropicClient(apiKey string, logger *slog.Logger, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
		logger: logger,
	}
}

func (c *AnthropicClient) Classify(title, description string) (string, model.Sentiment) {
	summary, err := c.complete(fmt.Sprintf(summaryPromptFmt, title))
	if err != nil {
		c.logger.Error("error generating summary", "title", title, "error", err)
		return FallbackSummary, model.SentimentNeutral
	}

	sentiment, err := c.complete(fmt.Sprintf(sentimentPromptFmt, title, description))
	if err != nil {
		c.logger.Error("error generating sentiment", "title", title, "error", err)
		return FallbackSummary, model.SentimentNeutral
	}

	return summary, model.CanonicalSentiment(sentiment)
}

func (c *AnthropicClient) complete(prompt string) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return strings.TrimSpace(resp.Content[0].Text), nil
}
