package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cryptonews/internal/platform/httpx"
)

const cryptoPanicPostsURL = "https://cryptopanic.com/api/free/v1/posts/"

type CryptoPanicClient struct {
	apiKey     string
	httpClient *httpx.Client
}

func NewCryptoPanicClient(apiKey string, httpClient *httpx.Client) *CryptoPanicClient {
	return &CryptoPanicClient{apiKey: apiKey, httpClient: httpClient}
}

func (c *CryptoPanicClient) Name() string {
	return "CryptoPanic"
}

func (c *CryptoPanicClient) FetchByKeyword(symbol string) ([]Article, error) {
	params := url.Values{}
	params.Set("auth_token", c.apiKey)
	params.Set("currencies", symbol)
	params.Set("kind", "news")

	req, err := http.NewRequest("GET", cryptoPanicPostsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("cryptopanic request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cryptopanic fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw cpResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cryptopanic decode: %w", err)
	}

	var articles []Article
	for _, item := range raw.Results {
		// Only entries explicitly marked "news" count; the API mixes in
		// media and other kinds even with the kind filter set.
		if item.Kind != "news" {
			continue
		}
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Title,
			URL:         item.URL,
			SourceLabel: item.Domain,
		})
	}

	return articles, nil
}

type cpResponse struct {
	Results []cpResult `json:"results"`
}

type cpResult struct {
	Title  string `json:"title"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
	Kind   string `json:"kind"`
}
