// Package screener maps fundamental profiles to a bounded composite score.
// Five independent metrics each contribute 0, 10 or 20 points through
// disjoint threshold buckets; the total is in [0, 100]. Missing
// fundamentals arrive as zero and fall into the no-point bucket — that is
// the documented policy, not a data-quality signal.
package screener

import (
	"sort"

	"StockSight/internal/domain/models"
)

// scoreMarketCap favors small caps: below $2B scores 20, below $3B scores
// 10. A missing cap arrives as zero and scores nothing.
func scoreMarketCap(v float64) int {
	switch {
	case v > 0 && v < 2e9:
		return 20
	case v >= 2e9 && v < 3e9:
		return 10
	default:
		return 0
	}
}

// scoreForwardPE rewards the (5, 15) band; exactly 15 falls to the 10-point
// bucket, exactly 20 to zero.
func scoreForwardPE(v float64) int {
	switch {
	case v > 5 && v < 15:
		return 20
	case v >= 15 && v < 20:
		return 10
	default:
		return 0
	}
}

func scorePriceToBook(v float64) int {
	switch {
	case v > 0 && v < 1:
		return 20
	case v >= 1 && v < 2:
		return 10
	default:
		return 0
	}
}

func scoreDebtToEquity(v float64) int {
	switch {
	case v > 0 && v < 50:
		return 20
	case v >= 50 && v < 100:
		return 10
	default:
		return 0
	}
}

func scoreProfitMargin(v float64) int {
	switch {
	case v > 0.20:
		return 20
	case v > 0.10:
		return 10
	default:
		return 0
	}
}

// ScoreProfile scores one profile. Pure: identical inputs always produce
// the identical result.
func ScoreProfile(p *models.FundamentalProfile) models.ScreeningResult {
	score := scoreMarketCap(p.MarketCap) +
		scoreForwardPE(p.ForwardPE) +
		scorePriceToBook(p.PriceToBook) +
		scoreDebtToEquity(p.DebtToEquity) +
		scoreProfitMargin(p.ProfitMargin)

	name := p.CompanyName
	if name == "" {
		name = p.Symbol
	}
	return models.ScreeningResult{
		Symbol:       p.Symbol,
		CompanyName:  name,
		MarketCap:    p.MarketCap,
		ForwardPE:    p.ForwardPE,
		PriceToBook:  p.PriceToBook,
		DebtToEquity: p.DebtToEquity,
		ProfitMargin: p.ProfitMargin,
		Score:        score,
	}
}

// Rank scores every profile and sorts descending by score. The sort is
// stable: ties keep the original input order.
func Rank(profiles []*models.FundamentalProfile) []models.ScreeningResult {
	results := make([]models.ScreeningResult, 0, len(profiles))
	for _, p := range profiles {
		if p == nil {
			continue
		}
		results = append(results, ScoreProfile(p))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// RankResults sorts already-scored results descending by score, stable on
// ties.
func RankResults(results []models.ScreeningResult) []models.ScreeningResult {
	out := make([]models.ScreeningResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
