package indicator

import (
	"StockSight/internal/domain/models"
)

// Beta computes the covariance-normalized sensitivity of the stock's
// percentage returns to the market benchmark's returns. Returns are
// computed per series over consecutive bars, then inner-joined by
// timestamp: only shared trading days count. Fewer than two aligned points
// or a zero market variance is a DataError.
func Beta(stock, market *models.PriceSeries) (float64, error) {
	if len(stock.Bars) == 0 {
		return 0, models.NewDataError("beta", "fewer than 2 aligned return points")
	}
	stockRets, err := returnsByTime(stock)
	if err != nil {
		return 0, err
	}
	marketRets, err := returnsByTime(market)
	if err != nil {
		return 0, err
	}

	var xs, ys []float64
	for _, b := range stock.Bars[1:] {
		ts := b.Timestamp.Unix()
		mr, ok := marketRets[ts]
		if !ok {
			continue
		}
		xs = append(xs, stockRets[ts])
		ys = append(ys, mr)
	}
	if len(xs) < 2 {
		return 0, models.NewDataError("beta", "fewer than 2 aligned return points")
	}

	mx, my := mean(xs), mean(ys)
	var cov, varM float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
		varM += (ys[i] - my) * (ys[i] - my)
	}
	n := float64(len(xs) - 1)
	cov /= n
	varM /= n
	if varM == 0 {
		return 0, models.NewDataError("beta", "zero market variance")
	}
	return cov / varM, nil
}

func returnsByTime(s *models.PriceSeries) (map[int64]float64, error) {
	rets := make(map[int64]float64, s.Len())
	for i := 1; i < len(s.Bars); i++ {
		prev := s.Bars[i-1].Close
		if prev == 0 {
			return nil, models.NewDataError("beta", "zero close price")
		}
		rets[s.Bars[i].Timestamp.Unix()] = s.Bars[i].Close/prev - 1
	}
	return rets, nil
}
