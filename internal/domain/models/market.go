package models

import "time"

// PriceBar represents a single OHLCV record for one trading interval.
type PriceBar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// PriceSeries holds the historical bars for one symbol over a requested
// period. Bars are ascending by timestamp with no duplicates; gaps from
// non-trading days are expected and windows count samples, not calendar days.
type PriceSeries struct {
	Symbol    string     `json:"symbol"`
	Period    string     `json:"period"`
	Bars      []PriceBar `json:"bars"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar, or false if the series is empty.
func (s *PriceSeries) Last() (PriceBar, bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// IndicatorSnapshot is the derived, read-only view of the latest bar plus
// its trailing indicator windows. It is recomputed per request, never stored.
type IndicatorSnapshot struct {
	Symbol       string    `json:"symbol"`
	Timestamp    time.Time `json:"timestamp"`
	CurrentPrice float64   `json:"current_price"`
	MA20         float64   `json:"ma20"`
	MA50         float64   `json:"ma50"`
	RSI          float64   `json:"rsi"`
	Volume       float64   `json:"volume"`
}

// RiskStats carries the optional annualized risk figures for a series.
// Beta is zero when no benchmark series was available.
type RiskStats struct {
	Volatility  float64 `json:"volatility"`
	SharpeRatio float64 `json:"sharpe_ratio"`
	Beta        float64 `json:"beta,omitempty"`
}
