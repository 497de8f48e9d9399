package llm

import "cryptonews/internal/model"

// FallbackSummary is stored when the generation service fails; enrichment
// failures never abort the pipeline.
const FallbackSummary = "Error generating summary"

// Enricher produces a short summary and a sentiment label for a news item.
// Implementations absorb their own failures and return the fallback pair.
type Enricher interface {
	Classify(title, description string) (string, model.Sentiment)
}

// Illustrator generates an image for a prompt and writes it to destPath.
// An empty path means no image was produced.
type Illustrator interface {
	Illustrate(prompt, destPath string) (string, error)
}

// DisabledIllustrator is used when no OpenAI key is configured; records keep
// their conventional image path but no file is ever written.
type DisabledIllustrator struct{}

func (DisabledIllustrator) Illustrate(prompt, destPath string) (string, error) {
	return "", nil
}
