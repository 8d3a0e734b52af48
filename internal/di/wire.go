//go:build wireinject
// +build wireinject

package di

import (
	"StockSight/pkg/config"
	"StockSight/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCacheStore,

		// External data services
		ProvideYahooClient,
		ProvideNewsFeed,
		ProvideSummarizer,

		// Use cases
		ProvideAnalysisUseCase,
		ProvideScreeningUseCase,
		ProvideNewsUseCase,

		// HTTP surface
		ProvideHandlers,
		ProvideHTTPServer,

		// Application lifecycle
		ProvideApp,
	)
	return &server.App{}, nil
}
