package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cryptonews/internal/model"
	"cryptonews/internal/store"
)

type PredictionStore interface {
	Load(key store.Key) *model.Collection
	ListSymbols(date string) ([]string, error)
}

type PredictionHandler struct {
	store PredictionStore
}

func NewPredictionHandler(store PredictionStore) *PredictionHandler {
	return &PredictionHandler{store: store}
}

func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("01022006")
	} else if !store.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected MMDDYYYY"})
		return
	}

	collection := h.store.Load(store.Key{Symbol: symbol, Date: date})

	predictions := make([]PredictionResponse, 0, len(collection.Predictions))
	for _, p := range collection.Predictions {
		predictions = append(predictions, PredictionResponse{
			ID:          p.ID,
			Title:       p.Title,
			Preview:     p.Preview,
			FullContent: p.FullContent,
			Image:       p.Image,
			SourceLink:  p.SourceLink,
			Sentiment:   string(p.Sentiment),
		})
	}

	c.JSON(http.StatusOK, PredictionsResponse{
		Symbol:      symbol,
		Date:        date,
		Predictions: predictions,
		Total:       len(predictions),
	})
}

func (h *PredictionHandler) GetSymbols(c *gin.Context) {
	date := time.Now().Format("01022006")

	symbols, err := h.store.ListSymbols(date)
	if err != nil {
		slog.Error("error listing symbols", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	if symbols == nil {
		symbols = []string{}
	}

	c.JSON(http.StatusOK, SymbolsResponse{Symbols: symbols, Date: date})
}

func (h *PredictionHandler) GetHealth(c *gin.Context) {
	_, err := h.store.ListSymbols(time.Now().Format("01022006"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreadable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  "readable",
	})
}
