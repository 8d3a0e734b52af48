package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"StockSight/internal/usecase"
)

func screenCmd() *cobra.Command {
	var (
		tickers  string
		minScore int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Score and rank a ticker universe",
		Long:  "Fetch fundamentals for each ticker in parallel, score them on valuation metrics and print the ranked table. Without --tickers the configured universe is screened.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, cleanup := buildCLIDeps(cfg)
			defer cleanup()

			var symbols []string
			if tickers != "" {
				for _, t := range strings.Split(tickers, ",") {
					if t = strings.TrimSpace(strings.ToUpper(t)); t != "" {
						symbols = append(symbols, t)
					}
				}
			}

			results, err := deps.screening.Screen(cmd.Context(), usecase.ScreenParams{
				Symbols:  symbols,
				MinScore: minScore,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No symbols matched the screen.")
				return nil
			}

			printScreenResults(results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tickers, "tickers", "t", "", "comma-separated tickers (default: configured universe)")
	cmd.Flags().IntVarP(&minScore, "min-score", "m", 0, "only show symbols at or above this score")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "cap the number of rows")
	return cmd
}
