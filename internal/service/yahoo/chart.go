package yahoo

import (
	"sort"
	"time"

	"StockSight/internal/domain/models"
)

// chartResponse mirrors the Yahoo Finance v8 chart API payload.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// parseChart converts the chart payload to a PriceSeries, dropping null
// bars (holidays, halts) and sorting ascending by timestamp.
func parseChart(resp *chartResponse, symbol, period string) (*models.PriceSeries, error) {
	if resp.Chart.Error != nil {
		return nil, models.NewDataError("yahoo.chart", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 ||
		len(resp.Chart.Result[0].Timestamp) == 0 ||
		len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, models.NewInsufficientData("yahoo.chart", 1, 0)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]models.PriceBar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		if quote.Close[i] == nil {
			continue
		}
		bars = append(bars, models.PriceBar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      deref(at(quote.Open, i)),
			High:      deref(at(quote.High, i)),
			Low:       deref(at(quote.Low, i)),
			Close:     *quote.Close[i],
			Volume:    deref(at(quote.Volume, i)),
		})
	}

	if len(bars) == 0 {
		return nil, models.NewInsufficientData("yahoo.chart", 1, 0)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp.Before(bars[j].Timestamp) })

	return &models.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Bars:      bars,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func at(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}
