// stocksight - stock analysis and screening from the terminal or as a
// web dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"StockSight/pkg/config"
)

var version = "1.0.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "stocksight",
		Short: "Stock market analysis and screening",
		Long: `stocksight fetches market data from Yahoo Finance, computes technical
indicators (moving averages, RSI, volatility, Sharpe ratio), screens a
universe of tickers for undervalued candidates and serves an interactive
web dashboard.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (optional)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(screenCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stocksight version %s\n", version)
		},
	}
}
