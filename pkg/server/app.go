// Package server ties the HTTP server and shared resources into one
// application lifecycle with signal-driven graceful shutdown.
package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"StockSight/pkg/config"
	xhttp "StockSight/pkg/http"
	"StockSight/pkg/logger"
)

// App encapsulates the dashboard application lifecycle.
type App struct {
	cfg        *config.Config
	log        *logger.Logger
	httpServer *xhttp.Server
	closers    []io.Closer
}

// New creates an App around an already-built HTTP server.
func New(cfg *config.Config, log *logger.Logger, httpServer *xhttp.Server) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
	}
}

// AddCloser registers a resource to close on shutdown, e.g. the cache store.
func (a *App) AddCloser(c io.Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("resource close error", logger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
