package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/internal/services/indicator"
	"StockSight/pkg/logger"
	"StockSight/pkg/metrics"
)

type fakeMarket struct {
	series *models.PriceSeries
	err    error
}

func (f *fakeMarket) History(_ context.Context, symbol string, period domrepo.Period) (*models.PriceSeries, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

type fakeMultiMarket struct {
	series map[string]*models.PriceSeries
}

func (f *fakeMultiMarket) History(_ context.Context, symbol string, _ domrepo.Period) (*models.PriceSeries, error) {
	s, ok := f.series[symbol]
	if !ok {
		return nil, models.NewDataError("fake", "unknown symbol "+symbol)
	}
	return s, nil
}

type fakeFundamentals struct {
	profiles map[string]*models.FundamentalProfile
	err      error
}

func (f *fakeFundamentals) Profile(_ context.Context, symbol string) (*models.FundamentalProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[symbol]
	if !ok {
		return nil, models.NewDataError("fake", "unknown symbol "+symbol)
	}
	return p, nil
}

type fakeNews struct {
	items []models.NewsItem
	err   error
}

func (f *fakeNews) Headlines(_ context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

// risingSeries builds n daily bars climbing from 100 by 0.5 per bar.
func risingSeries(symbol string, n int) *models.PriceSeries {
	bars := make([]models.PriceBar, n)
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		price := 100 + 0.5*float64(i)
		bars[i] = models.PriceBar{
			Timestamp: base.AddDate(0, 0, i),
			Open:      price - 0.2,
			High:      price + 0.5,
			Low:       price - 0.5,
			Close:     price,
			Volume:    1_000_000,
		}
	}
	return &models.PriceSeries{Symbol: symbol, Period: "1y", Bars: bars}
}

func newAnalysisUC(market domrepo.MarketData, fundamentals domrepo.Fundamentals, news domrepo.NewsSource) *AnalysisUseCase {
	return NewAnalysisUseCase(market, fundamentals, news,
		indicator.DefaultWindows(), indicator.DefaultVolatilityWindow, indicator.DefaultRiskFreeRate,
		logger.Nop(), metrics.Nop{})
}

func TestAnalyzeFullReport(t *testing.T) {
	uc := newAnalysisUC(
		&fakeMarket{series: risingSeries("AAPL", 120)},
		&fakeFundamentals{profiles: map[string]*models.FundamentalProfile{
			"AAPL": {Symbol: "AAPL", CompanyName: "Apple Inc.", MarketCap: 2.5e12},
		}},
		&fakeNews{items: []models.NewsItem{{Title: "headline"}}},
	)

	report, err := uc.Analyze(context.Background(), AnalyzeParams{
		Symbol:      "AAPL",
		WithProfile: true,
		WithNews:    true,
		NewsLimit:   5,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Symbol != "AAPL" || report.Period != "1y" {
		t.Errorf("report meta = %s/%s", report.Symbol, report.Period)
	}
	if report.Snapshot.CurrentPrice != 100+0.5*119 {
		t.Errorf("CurrentPrice = %g", report.Snapshot.CurrentPrice)
	}
	if report.Snapshot.MA20 <= 0 || report.Snapshot.MA50 <= 0 {
		t.Errorf("moving averages not populated: %+v", report.Snapshot)
	}
	if report.Risk == nil {
		t.Error("Risk missing")
	}
	if len(report.Insights) == 0 {
		t.Error("Insights empty")
	}
	if report.Profile == nil || report.Profile.CompanyName != "Apple Inc." {
		t.Errorf("Profile = %+v", report.Profile)
	}
	if len(report.News) != 1 {
		t.Errorf("News = %+v", report.News)
	}
}

func TestAnalyzeShortSeries(t *testing.T) {
	uc := newAnalysisUC(&fakeMarket{series: risingSeries("NEW", 30)}, nil, nil)

	_, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "NEW"})
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestAnalyzeEmptySymbol(t *testing.T) {
	uc := newAnalysisUC(&fakeMarket{}, nil, nil)
	if _, err := uc.Analyze(context.Background(), AnalyzeParams{}); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}

func TestAnalyzeProfileFailureTolerated(t *testing.T) {
	uc := newAnalysisUC(
		&fakeMarket{series: risingSeries("AAPL", 120)},
		&fakeFundamentals{err: errors.New("upstream down")},
		nil,
	)

	report, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL", WithProfile: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Profile != nil {
		t.Errorf("Profile = %+v, want nil", report.Profile)
	}
}

func TestAnalyzeNewsFailureTolerated(t *testing.T) {
	uc := newAnalysisUC(
		&fakeMarket{series: risingSeries("AAPL", 120)},
		nil,
		&fakeNews{err: errors.New("feed down")},
	)

	report, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL", WithNews: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(report.News) != 0 {
		t.Errorf("News = %+v, want empty", report.News)
	}
}

func TestAnalyzeInsightsContent(t *testing.T) {
	uc := newAnalysisUC(&fakeMarket{series: risingSeries("UP", 120)}, nil, nil)

	report, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "UP"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// A steadily rising series sits above its 20-day average with the
	// short average above the long one.
	foundAbove, foundBullish := false, false
	for _, s := range report.Insights {
		switch {
		case strings.Contains(s, "above the 20-day moving average"):
			foundAbove = true
		case strings.Contains(s, "bullish trend signal"):
			foundBullish = true
		}
	}
	if !foundAbove || !foundBullish {
		t.Errorf("insights = %v", report.Insights)
	}
}

func TestAnalyzeBetaAgainstBenchmark(t *testing.T) {
	market := &fakeMultiMarket{series: map[string]*models.PriceSeries{
		"AAPL":  risingSeries("AAPL", 120),
		"^GSPC": risingSeries("^GSPC", 120),
	}}
	uc := newAnalysisUC(market, nil, nil).WithBenchmark("^GSPC")

	report, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Risk == nil {
		t.Fatal("Risk missing")
	}
	// Identical stock and benchmark series move one-for-one.
	if math.Abs(report.Risk.Beta-1) > 1e-6 {
		t.Errorf("Beta = %g, want 1", report.Risk.Beta)
	}
}

func TestAnalyzeBenchmarkFailureTolerated(t *testing.T) {
	market := &fakeMultiMarket{series: map[string]*models.PriceSeries{
		"AAPL": risingSeries("AAPL", 120),
	}}
	uc := newAnalysisUC(market, nil, nil).WithBenchmark("^GSPC")

	report, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Risk == nil || report.Risk.Beta != 0 {
		t.Errorf("Risk = %+v, want beta zero", report.Risk)
	}
}

func TestHistoryPassThrough(t *testing.T) {
	series := risingSeries("AAPL", 60)
	uc := newAnalysisUC(&fakeMarket{series: series}, nil, nil)

	got, err := uc.History(context.Background(), "AAPL", "")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if got.Len() != 60 {
		t.Errorf("len = %d", got.Len())
	}
}
