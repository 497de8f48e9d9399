package llm

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"

	"cryptonews/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestClassify(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			json.NewEncoder(w).Encode(chatResponse("BTC price surged to new high"))
			return
		}
		json.NewEncoder(w).Encode(chatResponse("Very Bullish"))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", testLogger(),
		option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	summary, sentiment := client.Classify("BTC hits new high", "Price surged")

	assert.Equal(t, "BTC price surged to new high", summary)
	assert.Equal(t, model.SentimentVeryBullish, sentiment)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClassifyPassesUnknownLabelThrough(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			json.NewEncoder(w).Encode(chatResponse("Five word summary goes here"))
			return
		}
		json.NewEncoder(w).Encode(chatResponse("Mildly Optimistic"))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", testLogger(),
		option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	_, sentiment := client.Classify("Some title", "Some description")

	assert.Equal(t, model.Sentiment("Mildly Optimistic"), sentiment)
}

func TestClassifyFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", testLogger(),
		option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	summary, sentiment := client.Classify("BTC hits new high", "Price surged")

	assert.Equal(t, FallbackSummary, summary)
	assert.Equal(t, model.SentimentNeutral, sentiment)
}

func TestClassifyFallbackOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewOpenAIClient("test-key", testLogger(),
		option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	summary, sentiment := client.Classify("BTC hits new high", "Price surged")

	assert.Equal(t, FallbackSummary, summary)
	assert.Equal(t, model.SentimentNeutral, sentiment)
}
