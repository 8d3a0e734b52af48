package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/internal/services/indicator"
	"StockSight/pkg/logger"
)

// AnalysisUseCase builds the consolidated analysis report for one symbol:
// indicator snapshot, risk stats, plain-language insights, fundamentals
// and recent headlines.
type AnalysisUseCase struct {
	market       domrepo.MarketData
	fundamentals domrepo.Fundamentals
	newsSource   domrepo.NewsSource
	windows      indicator.Windows
	volWindow    int
	riskFreeRate float64
	benchmark    string
	log          *logger.Logger
	metrics      domrepo.Metrics
}

// NewAnalysisUseCase wires the analysis pipeline. fundamentals and
// newsSource may be nil; the report simply omits those sections.
func NewAnalysisUseCase(
	market domrepo.MarketData,
	fundamentals domrepo.Fundamentals,
	newsSource domrepo.NewsSource,
	windows indicator.Windows,
	volWindow int,
	riskFreeRate float64,
	log *logger.Logger,
	metrics domrepo.Metrics,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		market:       market,
		fundamentals: fundamentals,
		newsSource:   newsSource,
		windows:      windows,
		volWindow:    volWindow,
		riskFreeRate: riskFreeRate,
		log:          log,
		metrics:      metrics,
	}
}

// WithBenchmark sets the index symbol used to compute beta. Analyze skips
// beta when no benchmark is set.
func (uc *AnalysisUseCase) WithBenchmark(symbol string) *AnalysisUseCase {
	uc.benchmark = symbol
	return uc
}

// AnalyzeParams selects the symbol, period and optional report sections.
type AnalyzeParams struct {
	Symbol      string
	Period      domrepo.Period
	WithProfile bool
	WithNews    bool
	NewsLimit   int
}

// Analyze produces the full report. Indicator data is mandatory; profile
// and news failures degrade to missing sections with a warning.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisReport, error) {
	if p.Symbol == "" {
		return nil, models.NewDataError("analyze", "symbol required")
	}
	if p.Period == "" {
		p.Period = domrepo.DefaultPeriod()
	}

	start := time.Now()
	defer func() {
		uc.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	}()

	series, err := uc.market.History(ctx, p.Symbol, p.Period)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", p.Symbol, err)
	}

	snapshot, err := indicator.Snapshot(series, uc.windows)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", p.Symbol, err)
	}

	report := &models.AnalysisReport{
		Symbol:      p.Symbol,
		Period:      string(p.Period),
		GeneratedAt: time.Now().UTC(),
		Snapshot:    *snapshot,
	}

	risk, err := indicator.Risk(series, uc.volWindow, uc.riskFreeRate)
	switch {
	case err == nil:
		report.Risk = risk
	case errors.Is(err, models.ErrInsufficientData):
		uc.log.Debug("risk stats skipped", logger.String("symbol", p.Symbol), logger.Error(err))
	default:
		var dataErr *models.DataError
		if !errors.As(err, &dataErr) {
			return nil, fmt.Errorf("analyze %s: %w", p.Symbol, err)
		}
		uc.log.Debug("risk stats degenerate", logger.String("symbol", p.Symbol), logger.Error(err))
	}

	if report.Risk != nil && uc.benchmark != "" && p.Symbol != uc.benchmark {
		if beta, err := uc.betaAgainstBenchmark(ctx, series, p.Period); err != nil {
			uc.log.Debug("beta skipped", logger.String("symbol", p.Symbol), logger.Error(err))
		} else {
			report.Risk.Beta = beta
		}
	}

	report.Insights = buildInsights(snapshot, report.Risk)

	if p.WithProfile && uc.fundamentals != nil {
		profile, err := uc.fundamentals.Profile(ctx, p.Symbol)
		if err != nil {
			uc.log.Warn("profile unavailable", logger.String("symbol", p.Symbol), logger.Error(err))
		} else {
			report.Profile = profile
		}
	}

	if p.WithNews && uc.newsSource != nil {
		limit := p.NewsLimit
		if limit <= 0 {
			limit = 5
		}
		items, err := uc.newsSource.Headlines(ctx, p.Symbol, limit)
		if err != nil {
			uc.log.Warn("news unavailable", logger.String("symbol", p.Symbol), logger.Error(err))
		} else {
			report.News = items
		}
	}

	return report, nil
}

func (uc *AnalysisUseCase) betaAgainstBenchmark(ctx context.Context, stock *models.PriceSeries, period domrepo.Period) (float64, error) {
	market, err := uc.market.History(ctx, uc.benchmark, period)
	if err != nil {
		return 0, err
	}
	return indicator.Beta(stock, market)
}

// History returns the raw price series for charting.
func (uc *AnalysisUseCase) History(ctx context.Context, symbol string, period domrepo.Period) (*models.PriceSeries, error) {
	if symbol == "" {
		return nil, models.NewDataError("history", "symbol required")
	}
	if period == "" {
		period = domrepo.DefaultPeriod()
	}
	return uc.market.History(ctx, symbol, period)
}

// buildInsights turns the snapshot into short plain-language observations.
func buildInsights(s *models.IndicatorSnapshot, risk *models.RiskStats) []string {
	insights := make([]string, 0, 4)

	if s.MA20 > 0 {
		diff := (s.CurrentPrice - s.MA20) / s.MA20 * 100
		if diff >= 0 {
			insights = append(insights, fmt.Sprintf("Price is %.1f%% above the 20-day moving average, indicating short-term strength.", diff))
		} else {
			insights = append(insights, fmt.Sprintf("Price is %.1f%% below the 20-day moving average, indicating short-term weakness.", -diff))
		}
	}

	if s.MA20 > s.MA50 {
		insights = append(insights, "The 20-day average is above the 50-day average, a bullish trend signal.")
	} else if s.MA20 < s.MA50 {
		insights = append(insights, "The 20-day average is below the 50-day average, a bearish trend signal.")
	}

	switch {
	case s.RSI > 70:
		insights = append(insights, fmt.Sprintf("RSI at %.1f suggests the stock is overbought.", s.RSI))
	case s.RSI < 30:
		insights = append(insights, fmt.Sprintf("RSI at %.1f suggests the stock is oversold.", s.RSI))
	default:
		insights = append(insights, fmt.Sprintf("RSI at %.1f is in neutral territory.", s.RSI))
	}

	if risk != nil {
		insights = append(insights, fmt.Sprintf("Annualized volatility is %.1f%% with a Sharpe ratio of %.2f.", risk.Volatility*100, risk.SharpeRatio))
	}

	return insights
}
