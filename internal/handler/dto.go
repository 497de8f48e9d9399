package handler

type PredictionResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Preview     string `json:"preview"`
	FullContent string `json:"fullContent"`
	Image       string `json:"image"`
	SourceLink  string `json:"sourcelink"`
	Sentiment   string `json:"sentiment"`
}

type PredictionsResponse struct {
	Symbol      string               `json:"symbol"`
	Date        string               `json:"date"`
	Predictions []PredictionResponse `json:"predictions"`
	Total       int                  `json:"total"`
}

type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
	Date    string   `json:"date"`
}
