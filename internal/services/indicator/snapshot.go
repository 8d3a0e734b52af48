package indicator

import (
	"StockSight/internal/domain/models"
)

// Windows configures the snapshot lookbacks.
type Windows struct {
	MAShort    int
	MALong     int
	RSIPeriods int
}

// DefaultWindows returns the standard 20/50-day MA and 14-period RSI setup.
func DefaultWindows() Windows {
	return Windows{MAShort: 20, MALong: 50, RSIPeriods: DefaultRSIPeriods}
}

// largest returns the minimum bar count that makes every window defined.
func (w Windows) largest() int {
	need := w.MAShort
	if w.MALong > need {
		need = w.MALong
	}
	if w.RSIPeriods+1 > need {
		need = w.RSIPeriods + 1
	}
	return need
}

// Snapshot builds the IndicatorSnapshot from the last bar of the series
// plus its trailing windows. An empty or too-short series is an
// InsufficientDataError: everything up to the largest configured window
// must be populated.
func Snapshot(series *models.PriceSeries, w Windows) (*models.IndicatorSnapshot, error) {
	need := w.largest()
	if series == nil || series.Len() < need {
		got := 0
		if series != nil {
			got = series.Len()
		}
		return nil, models.NewInsufficientData("snapshot", need, got)
	}

	closes := series.Closes()
	maShort, err := MovingAverage(closes, w.MAShort)
	if err != nil {
		return nil, err
	}
	maLong, err := MovingAverage(closes, w.MALong)
	if err != nil {
		return nil, err
	}
	rsi, err := RSI(closes, w.RSIPeriods)
	if err != nil {
		return nil, err
	}

	last := series.Bars[series.Len()-1]
	return &models.IndicatorSnapshot{
		Symbol:       series.Symbol,
		Timestamp:    last.Timestamp,
		CurrentPrice: last.Close,
		MA20:         maShort[len(maShort)-1],
		MA50:         maLong[len(maLong)-1],
		RSI:          rsi[len(rsi)-1],
		Volume:       last.Volume,
	}, nil
}

// Risk computes the latest annualized volatility and the Sharpe ratio for
// the series. Degenerate series (flat prices, non-positive closes) surface
// as DataError from the underlying computations.
func Risk(series *models.PriceSeries, volWindow int, riskFreeRate float64) (*models.RiskStats, error) {
	if series == nil || series.Len() < volWindow+1 {
		got := 0
		if series != nil {
			got = series.Len()
		}
		return nil, models.NewInsufficientData("risk stats", volWindow+1, got)
	}
	closes := series.Closes()
	vol, err := Volatility(closes, volWindow)
	if err != nil {
		return nil, err
	}
	sharpe, err := SharpeRatio(closes, riskFreeRate)
	if err != nil {
		return nil, err
	}
	return &models.RiskStats{
		Volatility:  vol[len(vol)-1],
		SharpeRatio: sharpe,
	}, nil
}
