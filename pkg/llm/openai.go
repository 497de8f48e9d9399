package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"cryptonews/internal/model"
)

const summaryPromptFmt = "Summarize this title in exactly 5 words: %s"

const sentimentPromptFmt = `Analyze the sentiment of this news article. Title: %s
Description: %s
Respond with exactly one of these: Very Bullish, Bullish, Neutral, Bearish, Very Bearish`

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

func NewOpenAIClient(apiKey string, logger *slog.Logger, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModelGPT4o,
		logger: logger,
	}
}

// Classify runs two completions, one for the summary and one for the
// sentiment. Any failure degrades to the fallback pair.
func (c *OpenAIClient) Classify(title, description string) (string, model.Sentiment) {
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

func (c *OpenAIClient) complete(prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
