package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"cryptonews/internal/platform/httpx"
)

const imagePromptFmt = "Create a professional financial chart or visualization related to: %s. Style: Modern, clean, financial."

// ImageClient generates an illustration per record with DALL-E 3, degrading
// to DALL-E 2 when the primary model fails.
type ImageClient struct {
	client     *openai.Client
	httpClient *httpx.Client
	logger     *slog.Logger
}

func NewImageClient(apiKey string, httpClient *httpx.Client, logger *slog.Logger, opts ...option.RequestOption) *ImageClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &ImageClient{
		client:     &client,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Illustrate generates an image for prompt and writes it to destPath,
// creating parent directories as needed.
func (c *ImageClient) Illustrate(prompt, destPath string) (string, error) {
	imageURL, err := c.generate(openai.ImageModelDallE3, prompt)
	if err != nil {
		c.logger.Warn("primary image model failed, trying fallback", "error", err)
		imageURL, err = c.generate(openai.ImageModelDallE2, prompt)
		if err != nil {
			return "", fmt.Errorf("image generation: %w", err)
		}
	}

	if err := c.download(imageURL, destPath); err != nil {
		return "", fmt.Errorf("image download: %w", err)
	}

	return destPath, nil
}

func (c *ImageClient) generate(imageModel openai.ImageModel, prompt string) (string, error) {
	resp, err := c.client.Images.Generate(context.Background(), openai.ImageGenerateParams{
		Model:  imageModel,
		Prompt: fmt.Sprintf(imagePromptFmt, prompt),
		N:      openai.Int(1),
		Size:   openai.ImageGenerateParamsSize1024x1024,
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image in response")
	}

	return resp.Data[0].URL, nil
}

func (c *ImageClient) download(imageURL, destPath string) error {
	req, err := http.NewRequest("GET", imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}
