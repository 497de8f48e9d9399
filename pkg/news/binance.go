package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cryptonews/internal/platform/httpx"
)

const binanceBulletinURL = "https://www.binance.com/bapi/composite/v1/public/bulletin/getBulletinList"

// The bulletin endpoint rejects requests without a browser user agent.
const binanceUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

// BinanceClient fetches exchange announcements. The endpoint has no keyword
// parameter, so announcements are filtered client-side on the symbol.
type BinanceClient struct {
	pageSize   int
	httpClient *httpx.Client
}

func NewBinanceClient(httpClient *httpx.Client) *BinanceClient {
	return &BinanceClient{pageSize: maxItemsPerFetch, httpClient: httpClient}
}

func (c *BinanceClient) Name() string {
	return "Binance"
}

func (c *BinanceClient) FetchByKeyword(symbol string) ([]Article, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"page":     1,
		"pageSize": c.pageSize,
		"lang":     "en-US",
		"category": "announcement",
	})
	if err != nil {
		return nil, fmt.Errorf("binance payload: %w", err)
	}

	req, err := http.NewRequest("POST", binanceBulletinURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("binance request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", binanceUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("binance fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw bnResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("binance decode: %w", err)
	}

	var articles []Article
	for _, item := range raw.Data.List {
		if !strings.Contains(strings.ToUpper(item.Title), strings.ToUpper(symbol)) {
			continue
		}
		description := item.Summary
		if description == "" {
			description = item.Title
		}
		articles = append(articles, Article{
			Title:       item.Title,
			Description: description,
			URL:         item.URL,
			SourceLabel: c.Name(),
		})
	}

	return articles, nil
}

type bnResponse struct {
	Data bnData `json:"data"`
}

type bnData struct {
	List []bnBulletin `json:"list"`
}

type bnBulletin struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}
