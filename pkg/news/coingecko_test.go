package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"cryptonews/internal/platform/httpx"
)

func TestCoinGeckoFetchByKeyword(t *testing.T) {
	payload := map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"title":       "BTC hits new high",
				"description": "Price surged",
				"url":         "https://example.com/btc-high",
				"news_site":   "CoinDesk",
			},
			{
				"title":       "Miners expand capacity",
				"description": "",
				"url":         "https://example.com/miners",
				"news_site":   "The Block",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BTC", r.URL.Query().Get("filter"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(testHTTPClient(srv.URL))

	articles, err := client.FetchByKeyword("BTC")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "BTC hits new high", a.Title)
	assert.Equal(t, "Price surged", a.Description)
	assert.Equal(t, "https://example.com/btc-high", a.URL)
	assert.Equal(t, "CoinDesk", a.SourceLabel)
}

func TestCoinGeckoFetchEncodesSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BTC&ETH", r.URL.Query().Get("filter"))
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]interface{}{}})
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(testHTTPClient(srv.URL))

	_, err := client.FetchByKeyword("BTC&ETH")

	assert.Equal(t, nil, err)
}

func TestCoinGeckoFetchCapsItems(t *testing.T) {
	var items []map[string]interface{}
	for i := 0; i < 25; i++ {
		items = append(items, map[string]interface{}{
			"title":     "item",
			"url":       "https://example.com",
			"news_site": "Site",
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": items})
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(testHTTPClient(srv.URL))

	articles, err := client.FetchByKeyword("BTC")

	assert.Equal(t, nil, err)
	assert.Equal(t, maxItemsPerFetch, len(articles))
}

func TestCoinGeckoFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(testHTTPClient(srv.URL))

	articles, err := client.FetchByKeyword("BTC")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func testHTTPClient(base string) *httpx.Client {
	c := httpx.New(httpx.Options{Timeout: 5 * time.Second, RequestsPerSec: 100, MaxRetries: 1})
	c.HTTPClient.Transport = &rewriteTransport{base: base, inner: http.DefaultTransport}
	return c
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	parsed, err := url.Parse(rt.base)
	if err != nil {
		return nil, err
	}
	req2 := req.Clone(req.Context())
	req2.URL.Host = parsed.Host
	req2.URL.Scheme = parsed.Scheme
	return rt.inner.RoundTrip(req2)
}
