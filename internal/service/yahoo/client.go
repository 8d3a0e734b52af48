// Package yahoo implements MarketData and Fundamentals against the public
// Yahoo Finance chart and quoteSummary endpoints.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"StockSight/internal/domain/models"
	"StockSight/internal/domain/repository"
	"StockSight/internal/service/ratelimit"
	"StockSight/pkg/cache"
	xhttp "StockSight/pkg/http"
	"StockSight/pkg/logger"
)

const (
	defaultBaseURL   = "https://query1.finance.yahoo.com"
	defaultUserAgent = "Mozilla/5.0 (compatible; StockSight/1.0)"

	quoteSummaryModules = "price,summaryProfile,summaryDetail,defaultKeyStatistics,financialData"
)

// Option configures Client.
type Option func(*Client)

// Client fetches historical bars and fundamentals from Yahoo Finance.
// Responses are cached with a TTL so repeated dashboard requests for the
// same symbol do not hammer the provider.
type Client struct {
	http       *xhttp.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	maxRPS     float64
	limiter    *ratelimit.Limiter
	store      cache.Store
	cacheTTL   time.Duration
	log        *logger.Logger
	metrics    repository.Metrics
}

// NewClient creates a Yahoo Finance client.
func NewClient(log *logger.Logger, metrics repository.Metrics, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		maxRetries: 3,
		retryDelay: time.Second,
		maxRPS:     5,
		limiter:    ratelimit.New(),
		cacheTTL:   time.Hour,
		log:        log,
		metrics:    metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient(xhttp.WithUserAgent(defaultUserAgent))
	}
	return c
}

// WithBaseURL overrides the API base URL; tests point it at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *xhttp.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRetries sets retry count and delay for transient failures.
func WithRetries(n int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = n
		c.retryDelay = delay
	}
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.maxRPS = rps
	}
}

// WithCache caches fetched payloads in store for ttl.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.store = store
		c.cacheTTL = ttl
	}
}

// History returns daily bars for symbol over period.
func (c *Client) History(ctx context.Context, symbol string, period repository.Period) (*models.PriceSeries, error) {
	key := cache.Key("history", symbol, string(period))
	if c.store != nil {
		var series models.PriceSeries
		if err := cache.GetJSON(ctx, c.store, key, &series); err == nil {
			c.metrics.RecordCache(true)
			return &series, nil
		}
		c.metrics.RecordCache(false)
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    u,
		QueryParams: map[string]string{
			"interval": "1d",
			"range":    string(period),
		},
	}

	var resp chartResponse
	if err := c.do(ctx, "history", symbol, opts, &resp); err != nil {
		return nil, err
	}

	series, err := parseChart(&resp, symbol, string(period))
	if err != nil {
		c.metrics.RecordError("parse")
		return nil, err
	}

	c.metrics.RecordFetch("yahoo", symbol)
	if last, ok := series.Last(); ok {
		c.metrics.RecordLastPrice(symbol, last.Close)
	}

	if c.store != nil {
		if err := cache.SetJSON(ctx, c.store, key, series, c.cacheTTL); err != nil {
			c.log.Warn("history cache write failed", logger.String("symbol", symbol), logger.Error(err))
		}
	}
	return series, nil
}

// Profile returns the fundamental snapshot for symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*models.FundamentalProfile, error) {
	key := cache.Key("profile", symbol)
	if c.store != nil {
		var profile models.FundamentalProfile
		if err := cache.GetJSON(ctx, c.store, key, &profile); err == nil {
			c.metrics.RecordCache(true)
			return &profile, nil
		}
		c.metrics.RecordCache(false)
	}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, url.PathEscape(symbol))
	opts := &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    u,
		QueryParams: map[string]string{
			"modules": quoteSummaryModules,
		},
	}

	var resp quoteSummaryResponse
	if err := c.do(ctx, "profile", symbol, opts, &resp); err != nil {
		return nil, err
	}

	profile, err := parseQuoteSummary(&resp, symbol)
	if err != nil {
		c.metrics.RecordError("parse")
		return nil, err
	}

	c.metrics.RecordFetch("yahoo", symbol)
	if c.store != nil {
		if err := cache.SetJSON(ctx, c.store, key, profile, c.cacheTTL); err != nil {
			c.log.Warn("profile cache write failed", logger.String("symbol", symbol), logger.Error(err))
		}
	}
	return profile, nil
}

// do runs one rate-limited request with retries on transient failures.
// 4xx responses other than 429 do not retry; the symbol is simply bad.
func (c *Client) do(ctx context.Context, op, symbol string, opts *xhttp.RequestOptions, dest interface{}) error {
	start := time.Now()
	defer func() {
		c.metrics.RecordLatency("yahoo."+op, time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
			c.log.Debug("retrying fetch",
				logger.String("op", op),
				logger.String("symbol", symbol),
				logger.Int("attempt", attempt))
		}

		if err := c.limiter.Wait(ctx, "yahoo", c.maxRPS, c.maxRPS); err != nil {
			return err
		}

		err := c.http.SendAndParse(ctx, opts, dest)
		if err == nil {
			return nil
		}
		lastErr = err

		var statusErr *xhttp.StatusError
		if errors.As(err, &statusErr) && statusErr.Code >= 400 && statusErr.Code < 500 && statusErr.Code != 429 {
			break
		}
	}

	c.metrics.RecordError("fetch")
	return fmt.Errorf("yahoo %s %s: %w", op, symbol, lastErr)
}
