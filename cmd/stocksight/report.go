package main

import (
	"fmt"
	"strings"

	"StockSight/internal/domain/models"
	"StockSight/pkg/config"
	"StockSight/pkg/util"
)

func printReport(r *models.AnalysisReport, cfg *config.Config) {
	name := r.Symbol
	if r.Profile != nil && r.Profile.CompanyName != "" {
		name = fmt.Sprintf("%s (%s)", r.Profile.CompanyName, r.Symbol)
	}

	fmt.Printf("\n%s — %s\n", name, r.Period)
	fmt.Println(strings.Repeat("-", 60))

	s := r.Snapshot
	fmt.Printf("  Price        %s   (as of %s)\n", util.FormatPrice(s.CurrentPrice), s.Timestamp.Format("2006-01-02"))
	fmt.Printf("  MA%-3d        %s\n", cfg.Indicators.MAShort, util.FormatPrice(s.MA20))
	fmt.Printf("  MA%-3d        %s\n", cfg.Indicators.MALong, util.FormatPrice(s.MA50))
	fmt.Printf("  RSI          %.1f\n", s.RSI)
	fmt.Printf("  Volume       %s\n", util.FormatNumber(int64(s.Volume)))

	if r.Risk != nil {
		fmt.Printf("  Volatility   %s (annualized)\n", util.FormatPercent(r.Risk.Volatility))
		fmt.Printf("  Sharpe       %.2f\n", r.Risk.SharpeRatio)
		if r.Risk.Beta != 0 {
			fmt.Printf("  Beta         %.2f\n", r.Risk.Beta)
		}
	}

	if p := r.Profile; p != nil {
		fmt.Println()
		if p.Sector != "" {
			fmt.Printf("  Sector       %s / %s\n", p.Sector, p.Industry)
		}
		fmt.Printf("  Market Cap   %s\n", util.FormatMarketCap(p.MarketCap))
		fmt.Printf("  Forward P/E  %s\n", util.FormatRatio(p.ForwardPE))
		fmt.Printf("  P/B          %s\n", util.FormatRatio(p.PriceToBook))
		fmt.Printf("  D/E          %s\n", util.FormatRatio(p.DebtToEquity))
		fmt.Printf("  Margin       %s\n", util.FormatPercent(p.ProfitMargin))
	}

	if len(r.Insights) > 0 {
		fmt.Println("\nInsights:")
		for _, insight := range r.Insights {
			fmt.Printf("  * %s\n", insight)
		}
	}
}

func printNews(items []models.NewsItem) {
	if len(items) == 0 {
		fmt.Println("\nNo recent news.")
		return
	}
	fmt.Println("\nRecent news:")
	for _, item := range items {
		fmt.Printf("  * %s", item.Title)
		if !item.Published.IsZero() {
			fmt.Printf("  (%s)", item.Published.Format("2006-01-02"))
		}
		fmt.Println()
		if item.Summary != "" {
			fmt.Printf("    %s\n", item.Summary)
		}
		fmt.Printf("    %s\n", item.Link)
	}
}

func printScreenResults(results []models.ScreeningResult) {
	fmt.Printf("\n%-8s %-28s %10s %8s %6s %7s %8s %6s\n",
		"SYMBOL", "COMPANY", "MKT CAP", "FWD P/E", "P/B", "D/E", "MARGIN", "SCORE")
	fmt.Println(strings.Repeat("-", 88))
	for _, r := range results {
		name := r.CompanyName
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		fmt.Printf("%-8s %-28s %10s %8s %6s %7s %8s %6d\n",
			r.Symbol, name,
			util.FormatMarketCap(r.MarketCap),
			util.FormatRatio(r.ForwardPE),
			util.FormatRatio(r.PriceToBook),
			util.FormatRatio(r.DebtToEquity),
			util.FormatPercent(r.ProfitMargin),
			r.Score)
	}
}
