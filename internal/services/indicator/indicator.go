// Package indicator implements the technical indicator engine: pure,
// stateless functions over ascending close-price series. Rolling windows
// count samples, not calendar days, so gaps from non-trading days are
// ignored. Undefined leading entries are math.NaN, matching the rolling
// semantics of the upstream data frames the formulas come from.
package indicator

import (
	"math"

	"StockSight/internal/domain/models"
)

const (
	// TradingDaysPerYear is the annualization base for daily bars.
	TradingDaysPerYear = 252

	// DefaultRSIPeriods is the standard RSI lookback.
	DefaultRSIPeriods = 14

	// DefaultVolatilityWindow is the standard rolling volatility window.
	DefaultVolatilityWindow = 21

	// DefaultRiskFreeRate is the annual risk-free rate for Sharpe.
	DefaultRiskFreeRate = 0.02
)

// MovingAverage computes the trailing arithmetic mean of closes over
// `window` samples, inclusive of the current one. The result has the same
// length as the input; entries before index window-1 are NaN.
func MovingAverage(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, models.NewDataError("moving average", "window must be positive")
	}
	out := make([]float64, len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// RSI computes the Relative Strength Index over rolling means of gains and
// losses. The result has the same length as the input; the first `periods`
// entries are NaN.
//
// Division edge cases are pinned explicitly instead of relying on float
// propagation: a window with zero average loss but positive average gain
// saturates at 100, a window with zero average gain and zero average loss
// (flat prices) is defined as 50.
func RSI(closes []float64, periods int) ([]float64, error) {
	if periods <= 0 {
		return nil, models.NewDataError("rsi", "periods must be positive")
	}
	n := len(closes)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if n < periods+1 {
		return out, nil
	}

	gains := make([]float64, n) // gains[i], losses[i] from the delta close[i]-close[i-1]
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < n; i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > periods {
			gainSum -= gains[i-periods]
			lossSum -= losses[i-periods]
		}
		if i < periods {
			continue
		}
		meanGain := gainSum / float64(periods)
		meanLoss := lossSum / float64(periods)
		switch {
		case meanLoss == 0 && meanGain == 0:
			out[i] = 50
		case meanLoss == 0:
			out[i] = 100
		default:
			rs := meanGain / meanLoss
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out, nil
}

// LogReturns computes r[i] = ln(close[i]/close[i-1]) aligned with closes:
// the result has the same length, entry 0 is NaN. A non-positive close is
// a DataError since the logarithm is undefined.
func LogReturns(closes []float64) ([]float64, error) {
	out := make([]float64, len(closes))
	if len(closes) > 0 {
		out[0] = math.NaN()
	}
	for i := 1; i < len(closes); i++ {
		if closes[i] <= 0 || closes[i-1] <= 0 {
			return nil, models.NewDataError("log returns", "non-positive close price")
		}
		out[i] = math.Log(closes[i] / closes[i-1])
	}
	return out, nil
}

// PctChange computes r[i] = close[i]/close[i-1] - 1 aligned with closes;
// entry 0 is NaN. A zero previous close is a DataError.
func PctChange(closes []float64) ([]float64, error) {
	out := make([]float64, len(closes))
	if len(closes) > 0 {
		out[0] = math.NaN()
	}
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return nil, models.NewDataError("pct change", "zero close price")
		}
		out[i] = closes[i]/closes[i-1] - 1
	}
	return out, nil
}

// Volatility computes annualized historical volatility: the rolling sample
// standard deviation of log returns over `window` samples, scaled by
// sqrt(252). The result aligns with closes; entries before index `window`
// are NaN (one bar is consumed by the return, window-1 more by the window).
func Volatility(closes []float64, window int) ([]float64, error) {
	if window <= 1 {
		return nil, models.NewDataError("volatility", "window must be greater than 1")
	}
	rets, err := LogReturns(closes)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	for i := window; i < len(closes); i++ {
		sd := sampleStd(rets[i-window+1 : i+1])
		out[i] = sd * math.Sqrt(TradingDaysPerYear)
	}
	return out, nil
}

// SharpeRatio computes the annualized Sharpe ratio of daily percentage
// returns against the given annual risk-free rate. Zero return variance is
// a DataError; fewer than two returns is an InsufficientDataError.
func SharpeRatio(closes []float64, riskFreeRate float64) (float64, error) {
	rets, err := PctChange(closes)
	if err != nil {
		return 0, err
	}
	if len(rets) < 3 { // rets[0] is NaN
		return 0, models.NewInsufficientData("sharpe ratio", 3, len(rets))
	}
	rets = rets[1:]

	std := sampleStd(rets)
	if std == 0 {
		return 0, models.NewDataError("sharpe ratio", "zero return variance")
	}
	daily := riskFreeRate / TradingDaysPerYear
	excess := 0.0
	for _, r := range rets {
		excess += r - daily
	}
	excess /= float64(len(rets))
	return math.Sqrt(TradingDaysPerYear) * excess / std, nil
}

// mean of xs; callers guarantee len(xs) > 0.
func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the n-1 normalized standard deviation, 0 for fewer than
// two samples.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
