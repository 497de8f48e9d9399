package model

type Sentiment string

const (
	SentimentVeryBullish Sentiment = "VeryBullish"
	SentimentBullish     Sentiment = "Bullish"
	SentimentNeutral     Sentiment = "Neutral"
	SentimentBearish     Sentiment = "Bearish"
	SentimentVeryBearish Sentiment = "VeryBearish"
)

// The model answers with spaced labels ("Very Bullish"); the stored form has
// none. Labels outside the table pass through unchanged.
var sentimentCanonical = map[string]Sentiment{
	"Very Bullish": SentimentVeryBullish,
	"Very Bearish": SentimentVeryBearish,
}

func CanonicalSentiment(raw string) Sentiment {
	if s, ok := sentimentCanonical[raw]; ok {
		return s
	}
	return Sentiment(raw)
}

// Record is one enriched news entry. Field order matters: it is the order
// written to predictions.yaml.
type Record struct {
	ID          int       `yaml:"id"`
	Title       string    `yaml:"title"`
	Preview     string    `yaml:"preview"`
	FullContent string    `yaml:"fullContent"`
	Image       string    `yaml:"image"`
	SourceLink  string    `yaml:"sourcelink"`
	Sentiment   Sentiment `yaml:"sentiment"`
}

// Collection holds all enriched entries for one (symbol, date) key.
type Collection struct {
	Predictions []Record `yaml:"predictions"`
}

// NextID returns max existing id + 1, or 1 for an empty collection.
func (c *Collection) NextID() int {
	maxID := 0
	for _, p := range c.Predictions {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func (c *Collection) Append(r Record) {
	c.Predictions = append(c.Predictions, r)
}
