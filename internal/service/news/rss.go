// Package news fetches recent headlines from the Yahoo Finance RSS feed
// and extracts article text for summarization.
package news

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"StockSight/internal/domain/models"
	"StockSight/internal/domain/repository"
	"StockSight/pkg/logger"
)

const defaultFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// Option configures Feed.
type Option func(*Feed)

// Feed implements NewsSource over a per-symbol RSS feed.
type Feed struct {
	parser  *gofeed.Parser
	feedURL string // %s placeholder for the symbol
	timeout time.Duration
	log     *logger.Logger
	metrics repository.Metrics
}

// NewFeed creates an RSS-backed news source.
func NewFeed(log *logger.Logger, metrics repository.Metrics, opts ...Option) *Feed {
	f := &Feed{
		parser:  gofeed.NewParser(),
		feedURL: defaultFeedURL,
		timeout: 10 * time.Second,
		log:     log,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithFeedURL overrides the feed URL template. The template must contain
// one %s for the symbol.
func WithFeedURL(tmpl string) Option {
	return func(f *Feed) {
		f.feedURL = tmpl
	}
}

// WithTimeout caps the feed fetch duration.
func WithTimeout(d time.Duration) Option {
	return func(f *Feed) {
		f.timeout = d
	}
}

// Headlines returns up to limit items for symbol, newest first.
func (f *Feed) Headlines(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	u := fmt.Sprintf(f.feedURL, symbol)
	feed, err := f.parser.ParseURLWithContext(u, ctx)
	if err != nil {
		f.metrics.RecordError("news")
		return nil, fmt.Errorf("news feed %s: %w", symbol, err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := models.NewsItem{
			Title: it.Title,
			Link:  it.Link,
		}
		if it.PublishedParsed != nil {
			item.Published = it.PublishedParsed.UTC()
		}
		if feed.Title != "" {
			item.Publisher = feed.Title
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	f.metrics.RecordFetch("rss", symbol)
	f.log.Debug("headlines fetched",
		logger.String("symbol", symbol),
		logger.Int("count", len(items)))
	return items, nil
}
