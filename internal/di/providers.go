package di

import (
	"fmt"
	"time"

	"StockSight/internal/domain/repository"
	"StockSight/internal/handler/api"
	"StockSight/internal/handler/web"
	"StockSight/internal/service/news"
	"StockSight/internal/service/openai"
	"StockSight/internal/service/yahoo"
	"StockSight/internal/services/indicator"
	"StockSight/internal/usecase"
	"StockSight/pkg/cache"
	"StockSight/pkg/config"
	xhttp "StockSight/pkg/http"
	"StockSight/pkg/logger"
	"StockSight/pkg/metrics"
	"StockSight/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCacheStore builds the quote cache: Redis-backed and layered when
// configured, in-memory otherwise, nil when caching is disabled.
func ProvideCacheStore(cfg *config.Config, log *logger.Logger) (cache.Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryStore(), nil
	}

	redisStore, err := cache.NewRedisStore(
		cache.WithRedisAddr(fmt.Sprintf("%s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port)),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix("stocksight"),
	)
	if err != nil {
		return nil, fmt.Errorf("cache store: %w", err)
	}
	log.Info("redis cache connected",
		logger.String("host", cfg.Cache.Redis.Host),
		logger.Int("port", cfg.Cache.Redis.Port))
	return cache.NewLayeredStore(redisStore), nil
}

// ProvideYahooClient creates the market data and fundamentals client.
func ProvideYahooClient(cfg *config.Config, log *logger.Logger, m repository.Metrics, store cache.Store) *yahoo.Client {
	opts := []yahoo.Option{
		yahoo.WithRetries(cfg.MarketData.MaxRetries, cfg.MarketData.RetryDelay),
		yahoo.WithRateLimit(cfg.MarketData.MaxRPS),
		yahoo.WithHTTPClient(xhttp.NewClient(
			xhttp.WithTimeout(cfg.MarketData.Timeout),
			xhttp.WithUserAgent("Mozilla/5.0 (compatible; StockSight/1.0)"),
		)),
	}
	if cfg.MarketData.BaseURL != "" {
		opts = append(opts, yahoo.WithBaseURL(cfg.MarketData.BaseURL))
	}
	if store != nil {
		opts = append(opts, yahoo.WithCache(store, cfg.Cache.TTL))
	}
	return yahoo.NewClient(log, m, opts...)
}

// ProvideNewsFeed creates the RSS headline source.
func ProvideNewsFeed(cfg *config.Config, log *logger.Logger, m repository.Metrics) *news.Feed {
	opts := []news.Option{news.WithTimeout(cfg.News.Timeout)}
	if cfg.News.FeedURL != "" {
		opts = append(opts, news.WithFeedURL(cfg.News.FeedURL))
	}
	return news.NewFeed(log, m, opts...)
}

// ProvideSummarizer creates the article summarizer; without an API key it
// falls back to truncation.
func ProvideSummarizer(cfg *config.Config, log *logger.Logger) *openai.Summarizer {
	opts := []openai.Option{
		openai.WithLimits(cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature),
		openai.WithHTTPClient(xhttp.NewClient(xhttp.WithTimeout(cfg.OpenAI.Timeout))),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	if cfg.OpenAI.Model != "" {
		opts = append(opts, openai.WithModel(cfg.OpenAI.Model))
	}
	return openai.New(cfg.OpenAI.APIKey, log, opts...)
}

// ProvideAnalysisUseCase wires the analysis pipeline.
func ProvideAnalysisUseCase(cfg *config.Config, client *yahoo.Client, feed *news.Feed, log *logger.Logger, m repository.Metrics) *usecase.AnalysisUseCase {
	windows := indicator.Windows{
		MAShort:    cfg.Indicators.MAShort,
		MALong:     cfg.Indicators.MALong,
		RSIPeriods: cfg.Indicators.RSIPeriods,
	}
	return usecase.NewAnalysisUseCase(client, client, feed,
		windows, cfg.Indicators.VolatilityWindow, cfg.Indicators.RiskFreeRate, log, m).
		WithBenchmark(cfg.Indicators.Benchmark)
}

// ProvideScreeningUseCase wires the screening pipeline.
func ProvideScreeningUseCase(cfg *config.Config, client *yahoo.Client, log *logger.Logger, m repository.Metrics) *usecase.ScreeningUseCase {
	return usecase.NewScreeningUseCase(client, cfg.Screener.Tickers, cfg.Screener.Workers, log, m).
		WithMaxResults(cfg.Screener.MaxSize)
}

// ProvideNewsUseCase wires the news pipeline.
func ProvideNewsUseCase(cfg *config.Config, feed *news.Feed, summarizer *openai.Summarizer, log *logger.Logger, m repository.Metrics) *usecase.NewsUseCase {
	extractor := news.NewArticleExtractor(xhttp.NewClient(
		xhttp.WithTimeout(15 * time.Second),
		xhttp.WithUserAgent("Mozilla/5.0 (compatible; StockSight/1.0)"),
	))
	return usecase.NewNewsUseCase(feed, extractor, summarizer, cfg.Screener.Workers, log, m)
}

// ProvideHandlers assembles the HTTP handlers, dashboard included.
func ProvideHandlers(
	log *logger.Logger,
	analysis *usecase.AnalysisUseCase,
	screening *usecase.ScreeningUseCase,
	newsUC *usecase.NewsUseCase,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewAnalysisHandler(log, analysis),
		api.NewScreenHandler(log, screening),
		api.NewNewsHandler(log, newsUC),
		web.NewHandler(),
	}
}

// ProvideHTTPServer creates the Echo server with all routes registered.
func ProvideHTTPServer(cfg *config.Config, log *logger.Logger, handlers []xhttp.Handler) *xhttp.Server {
	return xhttp.NewServer(log, handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
}

// ProvideApp creates the application lifecycle around the HTTP server.
func ProvideApp(cfg *config.Config, log *logger.Logger, httpServer *xhttp.Server, store cache.Store) *server.App {
	app := server.New(cfg, log, httpServer)
	if store != nil {
		app.AddCloser(store)
	}
	return app
}
