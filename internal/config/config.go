package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all pipeline and API configuration, read from the
// environment. Mains call godotenv.Load before Load.
type Config struct {
	OpenAIAPIKey      string
	AnthropicAPIKey   string
	CryptoPanicAPIKey string
	Symbols           []string
	DataDir           string
	RequestTimeout    int // seconds
	FrontendURL       string
}

func Load() *Config {
	return &Config{
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		CryptoPanicAPIKey: os.Getenv("CRYPTOPANIC_API_KEY"),
		Symbols:           splitSymbols(getEnvWithDefault("SYMBOLS", "BTC")),
		DataDir:           getEnvWithDefault("DATA_DIR", "."),
		RequestTimeout:    getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
	}
}

// Validate is called before any network call; missing required configuration
// is the only fatal startup condition.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" && c.AnthropicAPIKey == "" {
		return errors.New("an OPENAI_API_KEY or ANTHROPIC_API_KEY is required")
	}
	if len(c.Symbols) == 0 {
		return errors.New("at least one symbol must be configured")
	}
	return nil
}

func splitSymbols(raw string) []string {
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
