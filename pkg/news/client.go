package news

// Article is a raw news item as returned by a provider, before enrichment.
// Description may equal Title for providers that only publish headlines.
type Article struct {
	Title       string
	Description string
	URL         string
	SourceLabel string
}

type NewsClient interface {
	FetchByKeyword(symbol string) ([]Article, error)
	Name() string
}
