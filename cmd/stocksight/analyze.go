package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domrepo "StockSight/internal/domain/repository"
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
)

// cliDeps bundles the pipeline pieces the one-shot commands share.
type cliDeps struct {
	analysis  *usecase.AnalysisUseCase
	screening *usecase.ScreeningUseCase
	news      *usecase.NewsUseCase
}

// buildCLIDeps constructs the pipelines without the DI graph: CLI runs use
// an in-memory cache and skip Prometheus, nothing scrapes a one-shot
// process.
func buildCLIDeps(cfg *config.Config) (*cliDeps, func()) {
	log, err := logger.New(&logger.Config{Level: "warn", Format: "console", Output: "stderr"})
	if err != nil {
		log = logger.Nop()
	}
	m := metrics.Nop{}
	store := cache.NewMemoryStore()

	client := yahoo.NewClient(log, m,
		yahoo.WithRetries(cfg.MarketData.MaxRetries, cfg.MarketData.RetryDelay),
		yahoo.WithRateLimit(cfg.MarketData.MaxRPS),
		yahoo.WithCache(store, cfg.Cache.TTL),
		yahoo.WithHTTPClient(xhttp.NewClient(
			xhttp.WithTimeout(cfg.MarketData.Timeout),
			xhttp.WithUserAgent("Mozilla/5.0 (compatible; StockSight/1.0)"),
		)),
	)
	feed := news.NewFeed(log, m, news.WithTimeout(cfg.News.Timeout))
	summarizer := openai.New(cfg.OpenAI.APIKey, log,
		openai.WithLimits(cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature))
	extractor := news.NewArticleExtractor(xhttp.NewClient(
		xhttp.WithUserAgent("Mozilla/5.0 (compatible; StockSight/1.0)"),
	))

	windows := indicator.Windows{
		MAShort:    cfg.Indicators.MAShort,
		MALong:     cfg.Indicators.MALong,
		RSIPeriods: cfg.Indicators.RSIPeriods,
	}

	deps := &cliDeps{
		analysis: usecase.NewAnalysisUseCase(client, client, feed,
			windows, cfg.Indicators.VolatilityWindow, cfg.Indicators.RiskFreeRate, log, m).
			WithBenchmark(cfg.Indicators.Benchmark),
		screening: usecase.NewScreeningUseCase(client, cfg.Screener.Tickers, cfg.Screener.Workers, log, m),
		news:      usecase.NewNewsUseCase(feed, extractor, summarizer, cfg.Screener.Workers, log, m),
	}
	return deps, func() { _ = store.Close() }
}

func analyzeCmd() *cobra.Command {
	var (
		period    string
		withNews  bool
		summarize bool
	)

	cmd := &cobra.Command{
		Use:   "analyze SYMBOL",
		Short: "Print the analysis report for one symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, cleanup := buildCLIDeps(cfg)
			defer cleanup()

			symbol := strings.ToUpper(args[0])
			report, err := deps.analysis.Analyze(cmd.Context(), usecase.AnalyzeParams{
				Symbol:      symbol,
				Period:      domrepo.NormalizePeriod(period),
				WithProfile: true,
			})
			if err != nil {
				return err
			}

			printReport(report, cfg)

			if withNews {
				items, err := deps.news.Headlines(cmd.Context(), usecase.NewsParams{
					Symbol:    symbol,
					Limit:     cfg.News.Limit,
					Summarize: summarize,
				})
				if err != nil {
					fmt.Printf("\nNews unavailable: %v\n", err)
				} else {
					printNews(items)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "1y", "history period (1mo, 3mo, 6mo, 1y, 2y, 5y, max)")
	cmd.Flags().BoolVarP(&withNews, "news", "n", false, "include recent headlines")
	cmd.Flags().BoolVarP(&summarize, "summarize", "s", false, "summarize linked articles (needs OPENAI_API_KEY)")
	return cmd
}
