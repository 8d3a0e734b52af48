package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"StockSight/internal/domain/models"
	domrepo "StockSight/internal/domain/repository"
	"StockSight/internal/services/indicator"
	"StockSight/internal/usecase"
	"StockSight/pkg/logger"
	"StockSight/pkg/metrics"
)

type stubMarket struct {
	series *models.PriceSeries
	err    error
}

func (s *stubMarket) History(context.Context, string, domrepo.Period) (*models.PriceSeries, error) {
	return s.series, s.err
}

type stubFundamentals struct {
	profiles map[string]*models.FundamentalProfile
}

func (s *stubFundamentals) Profile(_ context.Context, symbol string) (*models.FundamentalProfile, error) {
	p, ok := s.profiles[symbol]
	if !ok {
		return nil, models.NewDataError("stub", "unknown symbol")
	}
	return p, nil
}

func barsFor(n int) *models.PriceSeries {
	bars := make([]models.PriceBar, n)
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		price := 50 + float64(i)
		bars[i] = models.PriceBar{Timestamp: base.AddDate(0, 0, i), Close: price, Volume: 10000}
	}
	return &models.PriceSeries{Symbol: "AAPL", Period: "1y", Bars: bars}
}

func newEcho(handlers ...interface{ RegisterRoutes(*echo.Echo) }) *echo.Echo {
	e := echo.New()
	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
	return e
}

func analysisHandler(market domrepo.MarketData) *AnalysisHandler {
	uc := usecase.NewAnalysisUseCase(market, nil, nil,
		indicator.DefaultWindows(), indicator.DefaultVolatilityWindow, indicator.DefaultRiskFreeRate,
		logger.Nop(), metrics.Nop{})
	return NewAnalysisHandler(logger.Nop(), uc)
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := newEcho(analysisHandler(&stubMarket{series: barsFor(120)}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=AAPL&period=1y", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.AnalysisReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Symbol != "AAPL" {
		t.Errorf("Symbol = %q", resp.Data.Symbol)
	}
	if resp.Data.Snapshot.MA20 == 0 {
		t.Error("MA20 missing")
	}
	if len(resp.Data.Insights) == 0 {
		t.Error("insights missing")
	}
}

func TestAnalyzeMissingSymbol(t *testing.T) {
	e := newEcho(analysisHandler(&stubMarket{series: barsFor(120)}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeBadPeriod(t *testing.T) {
	e := newEcho(analysisHandler(&stubMarket{series: barsFor(120)}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=AAPL&period=7y", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeInsufficientData(t *testing.T) {
	e := newEcho(analysisHandler(&stubMarket{series: barsFor(10)}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?symbol=NEW", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	e := newEcho(analysisHandler(&stubMarket{series: barsFor(60)}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history?symbol=AAPL&period=6mo", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data models.PriceSeries `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Len() != 60 {
		t.Errorf("bars = %d", resp.Data.Len())
	}
}

func TestScreenEndpoint(t *testing.T) {
	fundamentals := &stubFundamentals{profiles: map[string]*models.FundamentalProfile{
		"AAA": {Symbol: "AAA", MarketCap: 1e9, ForwardPE: 10, PriceToBook: 0.5, DebtToEquity: 20, ProfitMargin: 0.3},
		"BBB": {Symbol: "BBB", MarketCap: 9e11},
	}}
	uc := usecase.NewScreeningUseCase(fundamentals, []string{"AAA", "BBB"}, 2, logger.Nop(), metrics.Nop{})
	e := newEcho(NewScreenHandler(logger.Nop(), uc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/screen", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Rows  []models.ScreeningResult `json:"rows"`
			Total int64                    `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Errorf("total = %d", resp.Data.Total)
	}
	if len(resp.Data.Rows) != 2 || resp.Data.Rows[0].Symbol != "AAA" {
		t.Errorf("rows = %+v", resp.Data.Rows)
	}
}

type stubNewsSource struct {
	items []models.NewsItem
}

func (s *stubNewsSource) Headlines(context.Context, string, int) ([]models.NewsItem, error) {
	return s.items, nil
}

func TestNewsEndpoint(t *testing.T) {
	source := &stubNewsSource{items: []models.NewsItem{{Title: "headline", Link: "https://example.com"}}}
	uc := usecase.NewNewsUseCase(source, nil, nil, 2, logger.Nop(), metrics.Nop{})
	e := newEcho(NewNewsHandler(logger.Nop(), uc))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news?symbol=AAPL", nil)
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Rows []models.NewsItem `json:"rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Rows) != 1 || resp.Data.Rows[0].Title != "headline" {
		t.Errorf("rows = %+v", resp.Data.Rows)
	}
}
