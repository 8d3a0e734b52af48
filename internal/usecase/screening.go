package usecase

import (
	"context"
	"time"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/internal/services/screener"
	"StockSight/pkg/logger"
	"StockSight/pkg/pool"
)

// ScreeningUseCase fans profile fetches out over a worker pool, scores
// them and returns a ranked list. Symbols whose fetch fails are skipped,
// never failing the whole screen.
type ScreeningUseCase struct {
	fundamentals   domrepo.Fundamentals
	defaultTickers []string
	workers        int
	maxResults     int
	log            *logger.Logger
	metrics        domrepo.Metrics
}

// NewScreeningUseCase creates the screening pipeline.
func NewScreeningUseCase(
	fundamentals domrepo.Fundamentals,
	defaultTickers []string,
	workers int,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *ScreeningUseCase {
	if workers <= 0 {
		workers = 5
	}
	return &ScreeningUseCase{
		fundamentals:   fundamentals,
		defaultTickers: defaultTickers,
		workers:        workers,
		log:            log,
		metrics:        metrics,
	}
}

// WithMaxResults caps the number of rows a screen can return regardless of
// the requested limit. Zero means unbounded.
func (uc *ScreeningUseCase) WithMaxResults(n int) *ScreeningUseCase {
	uc.maxResults = n
	return uc
}

// ScreenParams selects the universe and result shaping. An empty Symbols
// list screens the configured default universe.
type ScreenParams struct {
	Symbols  []string
	MinScore int
	Limit    int
}

// Screen fetches, scores and ranks the requested universe.
func (uc *ScreeningUseCase) Screen(ctx context.Context, p ScreenParams) ([]models.ScreeningResult, error) {
	symbols := p.Symbols
	if len(symbols) == 0 {
		symbols = uc.defaultTickers
	}
	if len(symbols) == 0 {
		return nil, models.NewDataError("screen", "no symbols to screen")
	}

	start := time.Now()
	defer func() {
		uc.metrics.RecordLatency("screen", time.Since(start).Seconds())
	}()

	fetched := pool.Map(ctx, uc.workers, symbols, func(ctx context.Context, symbol string) (*models.FundamentalProfile, error) {
		return uc.fundamentals.Profile(ctx, symbol)
	})

	profiles := make([]*models.FundamentalProfile, 0, len(fetched))
	for _, r := range fetched {
		if r.Err != nil {
			uc.log.Warn("screening symbol skipped",
				logger.String("symbol", r.Input),
				logger.Error(r.Err))
			uc.metrics.RecordError("screen_fetch")
			continue
		}
		profiles = append(profiles, r.Value)
	}

	if len(profiles) == 0 {
		return nil, models.NewDataError("screen", "no profiles could be fetched")
	}

	results := screener.Rank(profiles)
	for _, r := range results {
		uc.metrics.RecordScore(r.Symbol, r.Score)
	}

	if p.MinScore > 0 {
		filtered := results[:0]
		for _, r := range results {
			if r.Score >= p.MinScore {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}
	limit := p.Limit
	if uc.maxResults > 0 && (limit <= 0 || limit > uc.maxResults) {
		limit = uc.maxResults
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	uc.log.Info("screen complete",
		logger.Int("universe", len(symbols)),
		logger.Int("scored", len(profiles)),
		logger.Int("returned", len(results)),
		logger.Duration("elapsed", time.Since(start)))
	return results, nil
}

// Universe returns the configured default ticker list.
func (uc *ScreeningUseCase) Universe() []string {
	out := make([]string, len(uc.defaultTickers))
	copy(out, uc.defaultTickers)
	return out
}
