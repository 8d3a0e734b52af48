package indicator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockSight/internal/domain/models"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f)", label, got, want, tol)
	}
}

func seriesFromCloses(symbol string, closes []float64) *models.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = models.PriceBar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1_000_000,
		}
	}
	return &models.PriceSeries{Symbol: symbol, Period: "1y", Bars: bars}
}

func TestMovingAverage_HandCalculated(t *testing.T) {
	// Closes: 100, 102, 104, 103, 105
	// MA(3) at index 2: (100+102+104)/3 = 102
	// MA(3) at index 3: (102+104+103)/3 = 103
	// MA(3) at index 4: (104+103+105)/3 = 104
	closes := []float64{100, 102, 104, 103, 105}
	ma, err := MovingAverage(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != len(closes) {
		t.Fatalf("length mismatch: got %d, want %d", len(ma), len(closes))
	}
	for i := 0; i < 2; i++ {
		if !math.IsNaN(ma[i]) {
			t.Errorf("index %d: expected NaN, got %f", i, ma[i])
		}
	}
	assertClose(t, "MA(3)[2]", ma[2], 102, 1e-9)
	assertClose(t, "MA(3)[3]", ma[3], 103, 1e-9)
	assertClose(t, "MA(3)[4]", ma[4], 104, 1e-9)
}

func TestMovingAverage_WindowLargerThanInput(t *testing.T) {
	ma, err := MovingAverage([]float64{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range ma {
		if !math.IsNaN(v) {
			t.Errorf("index %d: expected NaN, got %f", i, v)
		}
	}
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	for _, w := range []int{0, -1} {
		if _, err := MovingAverage([]float64{1, 2}, w); err == nil {
			t.Errorf("window %d: expected error", w)
		}
	}
}

func TestRSI_UndefinedPrefix(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15}
	rsi, err := RSI(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsi) != len(closes) {
		t.Fatalf("length mismatch: got %d, want %d", len(rsi), len(closes))
	}
	for i := 0; i < 3; i++ {
		if !math.IsNaN(rsi[i]) {
			t.Errorf("index %d: expected NaN, got %f", i, rsi[i])
		}
	}
}

func TestRSI_AllGainSaturatesAt100(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15, 16}
	rsi, err := RSI(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 3; i < len(rsi); i++ {
		assertClose(t, "all-gain RSI", rsi[i], 100, 1e-9)
	}
}

func TestRSI_AllLossSaturatesAt0(t *testing.T) {
	closes := []float64{16, 15, 14, 13, 12, 11, 10}
	rsi, err := RSI(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 3; i < len(rsi); i++ {
		assertClose(t, "all-loss RSI", rsi[i], 0, 1e-9)
	}
}

func TestRSI_FlatSeriesDefinedAs50(t *testing.T) {
	// Zero gain and zero loss is a 0/0 case; pinned to 50 by policy.
	closes := []float64{100, 100, 100, 100, 100, 100}
	rsi, err := RSI(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 3; i < len(rsi); i++ {
		assertClose(t, "flat RSI", rsi[i], 50, 1e-9)
	}
}

func TestRSI_HandCalculated(t *testing.T) {
	// Closes: 10, 11, 10.5, 11.5, periods 2.
	// Deltas: +1, -0.5, +1
	// Index 2: meanGain = 1/2, meanLoss = 0.5/2 -> rs = 2 -> rsi = 66.667
	// Index 3: meanGain = 1/2, meanLoss = 0.5/2 -> rs = 2 -> rsi = 66.667
	closes := []float64{10, 11, 10.5, 11.5}
	rsi, err := RSI(closes, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "RSI[2]", rsi[2], 100-100.0/3, 1e-6)
	assertClose(t, "RSI[3]", rsi[3], 100-100.0/3, 1e-6)
}

func TestRSI_BoundedForFiniteInput(t *testing.T) {
	closes := []float64{50, 52, 51, 55, 53, 58, 57, 60, 56, 61, 59, 64, 62, 65, 63, 68}
	rsi, err := RSI(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range rsi {
		if math.IsNaN(v) {
			continue
		}
		if v < 0 || v > 100 {
			t.Errorf("index %d: RSI %f outside [0,100]", i, v)
		}
	}
}

func TestVolatility_HandCalculated(t *testing.T) {
	// Closes: 1, e, 1 -> log returns: _, +1, -1.
	// Window 2 at index 2: sample std of {+1, -1} = sqrt(2), annualized.
	closes := []float64{1, math.E, 1}
	vol, err := Volatility(closes, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(vol[0]) || !math.IsNaN(vol[1]) {
		t.Error("expected NaN prefix before the first full window")
	}
	assertClose(t, "vol[2]", vol[2], math.Sqrt(2)*math.Sqrt(252), 1e-9)
}

func TestVolatility_FlatSeriesIsZero(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100}
	vol, err := Volatility(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "flat vol", vol[len(vol)-1], 0, 1e-12)
}

func TestVolatility_NonPositiveCloseIsDataError(t *testing.T) {
	_, err := Volatility([]float64{100, 0, 100, 100}, 2)
	var de *models.DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestSharpeRatio_HandCalculated(t *testing.T) {
	// Closes: 100, 110, 99, 108.9 -> pct returns: +0.1, -0.1, +0.1
	// mean = 1/30, sample std = 0.11547005, rf = 0:
	// sharpe = sqrt(252) * 0.03333333 / 0.11547005 = 4.5825757
	closes := []float64{100, 110, 99, 108.9}
	sharpe, err := SharpeRatio(closes, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "sharpe", sharpe, 4.5825757, 1e-6)
}

func TestSharpeRatio_ZeroVarianceIsDataError(t *testing.T) {
	// Doubling closes: every pct return is exactly 1.0 (the ratios are
	// exact in binary floating point), so the sample std is exactly zero.
	closes := []float64{100, 200, 400, 800}
	_, err := SharpeRatio(closes, 0.02)
	var de *models.DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestSharpeRatio_TooFewBars(t *testing.T) {
	_, err := SharpeRatio([]float64{100, 101}, 0.02)
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected insufficient data, got %v", err)
	}
}

func TestLogReturns_Alignment(t *testing.T) {
	rets, err := LogReturns([]float64{1, math.E})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(rets[0]) {
		t.Error("expected NaN at index 0")
	}
	assertClose(t, "log return", rets[1], 1, 1e-12)
}
