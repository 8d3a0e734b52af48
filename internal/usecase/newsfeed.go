package usecase

import (
	"context"
	"time"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/pkg/logger"
	"StockSight/pkg/pool"
)

// ArticleExtractor pulls readable text from an article URL.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// NewsUseCase fetches headlines and, when a summarizer is configured,
// enriches each with a short summary of the linked article.
type NewsUseCase struct {
	source     domrepo.NewsSource
	extractor  ArticleExtractor
	summarizer domrepo.Summarizer
	workers    int
	log        *logger.Logger
	metrics    domrepo.Metrics
}

// NewNewsUseCase creates the news pipeline. extractor and summarizer may
// be nil, in which case headlines come back without summaries.
func NewNewsUseCase(
	source domrepo.NewsSource,
	extractor ArticleExtractor,
	summarizer domrepo.Summarizer,
	workers int,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *NewsUseCase {
	if workers <= 0 {
		workers = 3
	}
	return &NewsUseCase{
		source:     source,
		extractor:  extractor,
		summarizer: summarizer,
		workers:    workers,
		log:        log,
		metrics:    metrics,
	}
}

// NewsParams selects the symbol and shaping of the headline list.
type NewsParams struct {
	Symbol    string
	Limit     int
	Summarize bool
}

// Headlines returns recent items for the symbol. Summarization failures
// leave the item without a summary rather than erroring.
func (uc *NewsUseCase) Headlines(ctx context.Context, p NewsParams) ([]models.NewsItem, error) {
	if p.Symbol == "" {
		return nil, models.NewDataError("news", "symbol required")
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 5
	}

	start := time.Now()
	defer func() {
		uc.metrics.RecordLatency("news", time.Since(start).Seconds())
	}()

	items, err := uc.source.Headlines(ctx, p.Symbol, limit)
	if err != nil {
		return nil, err
	}

	if !p.Summarize || uc.extractor == nil || uc.summarizer == nil {
		return items, nil
	}

	summarized := pool.Map(ctx, uc.workers, items, func(ctx context.Context, item models.NewsItem) (models.NewsItem, error) {
		text, err := uc.extractor.Extract(ctx, item.Link)
		if err != nil {
			uc.log.Debug("article extraction failed",
				logger.String("link", item.Link),
				logger.Error(err))
			return item, nil
		}
		summary, err := uc.summarizer.Summarize(ctx, text)
		if err != nil {
			uc.log.Debug("summarization failed",
				logger.String("link", item.Link),
				logger.Error(err))
			return item, nil
		}
		item.Summary = summary
		return item, nil
	})

	out := make([]models.NewsItem, 0, len(items))
	for _, r := range summarized {
		if r.Err != nil {
			out = append(out, r.Input)
			continue
		}
		out = append(out, r.Value)
	}
	return out, nil
}
