package models

import "time"

// NewsItem is one headline for a symbol, optionally enriched with an
// AI-generated summary of the linked article.
type NewsItem struct {
	Title     string    `json:"title"`
	Publisher string    `json:"publisher,omitempty"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
	Summary   string    `json:"summary,omitempty"`
}

// AnalysisReport is the consolidated view returned by the analysis usecase:
// indicators, derived insights, fundamentals and recent news for one symbol.
type AnalysisReport struct {
	Symbol      string              `json:"symbol"`
	Period      string              `json:"period"`
	GeneratedAt time.Time           `json:"generated_at"`
	Snapshot    IndicatorSnapshot   `json:"snapshot"`
	Risk        *RiskStats          `json:"risk,omitempty"`
	Insights    []string            `json:"insights"`
	Profile     *FundamentalProfile `json:"profile,omitempty"`
	News        []NewsItem          `json:"news,omitempty"`
}
