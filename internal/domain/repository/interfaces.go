package repository

import (
	"context"

	"StockSight/internal/domain/models"
)

// MarketData provides historical bars for one symbol over a period.
// Implementations return models.ErrInsufficientData when the provider has
// no bars for the symbol rather than an empty series.
type MarketData interface {
	History(ctx context.Context, symbol string, period Period) (*models.PriceSeries, error)
}

// Fundamentals provides point-in-time fundamental ratios for one symbol.
// Fields the provider does not report are left at zero.
type Fundamentals interface {
	Profile(ctx context.Context, symbol string) (*models.FundamentalProfile, error)
}

// NewsSource provides recent headlines for one symbol.
type NewsSource interface {
	Headlines(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)
}

// Summarizer condenses article text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Enabled() bool
}

// Metrics records operational measurements.
type Metrics interface {
	RecordFetch(provider, symbol string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
	RecordScore(symbol string, score int)
	RecordCache(hit bool)
}
