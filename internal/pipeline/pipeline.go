package pipeline

import (
	"fmt"
	"log/slog"

	"cryptonews/internal/model"
	"cryptonews/internal/store"
	"cryptonews/pkg/llm"
	"cryptonews/pkg/news"
)

// Pipeline runs fetch, enrich, illustrate, and append sequentially for each
// configured symbol. Failures are isolated: a provider error skips that
// provider, an enrichment or image failure degrades that record, and a
// symbol-level failure never stops the remaining symbols.
type Pipeline struct {
	store       *store.Store
	fetchers    []news.NewsClient
	enricher    llm.Enricher
	illustrator llm.Illustrator
	logger      *slog.Logger
}

func New(st *store.Store, fetchers []news.NewsClient, enricher llm.Enricher, illustrator llm.Illustrator, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		store:       st,
		fetchers:    fetchers,
		enricher:    enricher,
		illustrator: illustrator,
		logger:      logger,
	}
}

func (p *Pipeline) Run(symbols []string) {
	for _, symbol := range symbols {
		if err := p.processSymbol(symbol); err != nil {
			p.logger.Error("error processing symbol", "symbol", symbol, "error", err)
			continue
		}
		p.logger.Info("symbol processed", "symbol", symbol)
	}
}

func (p *Pipeline) processSymbol(symbol string) error {
	key := store.TodayKey(symbol)
	collection := p.store.Load(key)

	var appended, illustrated, fetchErrors int

	for _, client := range p.fetchers {
		source := client.Name()

		items, err := client.FetchByKeyword(symbol)
		if err != nil {
			p.logger.Error("error fetching news", "source", source, "symbol", symbol, "error", err)
			fetchErrors++
			continue
		}

		for _, item := range items {
			id := collection.NextID()

			summary, sentiment := p.enricher.Classify(item.Title, item.Description)

			imagePath, err := p.illustrator.Illustrate(item.Title, p.store.ImagePath(key, id))
			if err != nil {
				p.logger.Warn("error generating image", "source", source, "id", id, "error", err)
			} else if imagePath != "" {
				illustrated++
			}

			collection.Append(model.Record{
				ID:          id,
				Title:       fmt.Sprintf("%s - %s", item.SourceLabel, sentiment),
				Preview:     summary,
				FullContent: item.Description,
				Image:       store.ImageRef(key, id),
				SourceLink:  item.URL,
				Sentiment:   sentiment,
			})
			appended++
		}

		p.logger.Info("provider processed", "source", source, "symbol", symbol, "items", len(items))
	}

	if err := p.store.Save(key, collection); err != nil {
		return fmt.Errorf("saving predictions: %w", err)
	}

	p.logger.Info("predictions saved", "symbol", symbol, "date", key.Date,
		"appended", appended, "illustrated", illustrated, "fetch_errors", fetchErrors,
		"total", len(collection.Predictions))

	return nil
}
