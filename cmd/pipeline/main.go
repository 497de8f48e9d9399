package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"cryptonews/internal/config"
	"cryptonews/internal/pipeline"
	"cryptonews/internal/platform/httpx"
	"cryptonews/internal/store"
	"cryptonews/pkg/llm"
	"cryptonews/pkg/news"
)

func main() {

	godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	httpClient := httpx.New(httpx.Options{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	clients := []news.NewsClient{news.NewCoinGeckoClient(httpClient)}
	if cfg.CryptoPanicAPIKey != "" {
		clients = append(clients, news.NewCryptoPanicClient(cfg.CryptoPanicAPIKey, httpClient))
	} else {
		slog.Warn("CRYPTOPANIC_API_KEY not set, skipping CryptoPanic")
	}
	clients = append(clients, news.NewBinanceClient(httpClient))

	var enricher llm.Enricher
	if cfg.OpenAIAPIKey != "" {
		enricher = llm.NewOpenAIClient(cfg.OpenAIAPIKey, logger)
	} else {
		enricher = llm.NewAnthropicClient(cfg.AnthropicAPIKey, logger)
	}

	var illustrator llm.Illustrator = llm.DisabledIllustrator{}
	if cfg.OpenAIAPIKey != "" {
		illustrator = llm.NewImageClient(cfg.OpenAIAPIKey, httpClient, logger)
	} else {
		slog.Warn("OPENAI_API_KEY not set, image generation disabled")
	}

	p := pipeline.New(store.New(cfg.DataDir), clients, enricher, illustrator, logger)

	slog.Info("starting pipeline", "symbols", cfg.Symbols, "providers", len(clients))
	p.Run(cfg.Symbols)
}
