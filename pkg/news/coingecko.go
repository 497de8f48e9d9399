package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cryptonews/internal/platform/httpx"
)

const coinGeckoNewsURL = "https://api.coingecko.com/api/v3/news"

// maxItemsPerFetch caps how many items a single run enriches per provider;
// every item costs two chat calls and one image generation.
const maxItemsPerFetch = 10

type CoinGeckoClient struct {
	httpClient *httpx.Client
}

func NewCoinGeckoClient(httpClient *httpx.Client) *CoinGeckoClient {
	return &CoinGeckoClient{httpClient: httpClient}
}

func (c *CoinGeckoClient) Name() string {
	return "CoinGecko"
}

func (c *CoinGeckoClient) FetchByKeyword(symbol string) ([]Article, error) {
	params := url.Values{}
	params.Set("filter", symbol)

	req, err := http.NewRequest("GET", coinGeckoNewsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw cgResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	if len(raw.Data) > maxItemsPerFetch {
		raw.Data = raw.Data[:maxItemsPerFetch]
	}

	articles := make([]Article, 0, len(raw.Data))
	for _, item := range raw.Data {
		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			SourceLabel: item.NewsSite,
		})
	}

	return articles, nil
}

type cgResponse struct {
	Data []cgItem `json:"data"`
}

type cgItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	NewsSite    string `json:"news_site"`
}
