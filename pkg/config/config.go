package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	MarketData struct {
		BaseURL    string        `yaml:"base_url"`
		Timeout    time.Duration `yaml:"timeout"`
		MaxRetries int           `yaml:"max_retries"`
		RetryDelay time.Duration `yaml:"retry_delay"`
		MaxRPS     float64       `yaml:"max_rps"`
	} `yaml:"market_data"`
	Indicators struct {
		MAShort          int     `yaml:"ma_short"`
		MALong           int     `yaml:"ma_long"`
		RSIPeriods       int     `yaml:"rsi_periods"`
		VolatilityWindow int     `yaml:"volatility_window"`
		RiskFreeRate     float64 `yaml:"risk_free_rate"`
		Benchmark        string  `yaml:"benchmark"` // index symbol used for beta
	} `yaml:"indicators"`
	Screener struct {
		Tickers []string `yaml:"tickers"`
		Workers int      `yaml:"workers"`
		MaxSize int      `yaml:"max_size"`
	} `yaml:"screener"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	News struct {
		FeedURL string        `yaml:"feed_url"` // %s is replaced with the symbol
		Limit   int           `yaml:"limit"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"news"`
	OpenAI struct {
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens"`
		Temperature float64       `yaml:"temperature"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"openai"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Environment = "development"
	c.Server.Port = 8050
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Log.Level = "info"
	c.Log.Format = "console"
	c.Log.Output = "stderr"
	c.MarketData.BaseURL = "https://query1.finance.yahoo.com"
	c.MarketData.Timeout = 30 * time.Second
	c.MarketData.MaxRetries = 3
	c.MarketData.RetryDelay = 500 * time.Millisecond
	c.MarketData.MaxRPS = 5
	c.Indicators.MAShort = 20
	c.Indicators.MALong = 50
	c.Indicators.RSIPeriods = 14
	c.Indicators.VolatilityWindow = 21
	c.Indicators.RiskFreeRate = 0.02
	c.Indicators.Benchmark = "^GSPC"
	c.Screener.Tickers = []string{
		"AAON", "AATI", "ABCB", "ABG", "ABM", "ACLS", "ADTN", "AEIS", "AEL", "AF",
		"AGYS", "AJRD", "AKS", "ALEX", "AM", "AMED", "AMPH", "AMSF", "AMWD", "ANIK",
	}
	c.Screener.Workers = 5
	c.Screener.MaxSize = 20
	c.Cache.Enabled = true
	c.Cache.TTL = time.Hour
	c.Cache.Redis.Host = "localhost"
	c.Cache.Redis.Port = 6379
	c.News.FeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"
	c.News.Limit = 5
	c.News.Timeout = 5 * time.Second
	c.OpenAI.BaseURL = "https://api.openai.com/v1"
	c.OpenAI.Model = "gpt-3.5-turbo"
	c.OpenAI.MaxTokens = 150
	c.OpenAI.Temperature = 0.5
	c.OpenAI.Timeout = 30 * time.Second
	return c
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML (defaults when path is empty) and
// overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	var c *Config
	if path == "" {
		c = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("STOCKSIGHT_TICKERS"); v != "" {
		c.Screener.Tickers = strings.Split(v, ",")
	}
	if v := os.Getenv("STOCKSIGHT_REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		if ok {
			c.Cache.Redis.Host = host
			fmt.Sscanf(port, "%d", &c.Cache.Redis.Port)
			c.Cache.Redis.Enabled = true
		}
	}
	if v := os.Getenv("STOCKSIGHT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.MarketData.BaseURL == "" {
		return fmt.Errorf("market_data.base_url is required")
	}
	if c.MarketData.MaxRetries < 0 {
		return fmt.Errorf("market_data.max_retries must not be negative")
	}
	if c.Indicators.MAShort <= 0 || c.Indicators.MALong <= 0 {
		return fmt.Errorf("indicators.ma_short and ma_long must be positive")
	}
	if c.Indicators.MAShort >= c.Indicators.MALong {
		return fmt.Errorf("indicators.ma_short must be below ma_long")
	}
	if c.Indicators.RSIPeriods <= 0 {
		return fmt.Errorf("indicators.rsi_periods must be positive")
	}
	if c.Indicators.VolatilityWindow <= 1 {
		return fmt.Errorf("indicators.volatility_window must be greater than 1")
	}
	if c.Screener.Workers <= 0 {
		return fmt.Errorf("screener.workers must be positive")
	}
	if len(c.Screener.Tickers) == 0 {
		return fmt.Errorf("screener.tickers cannot be empty")
	}
	return nil
}
