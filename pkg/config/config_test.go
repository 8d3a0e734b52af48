package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: 9000
cache:
  ttl: 30m
screener:
  workers: 3
  tickers: ["AAON", "ABCB"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 9000 {
		t.Errorf("port: got %d", c.Server.Port)
	}
	if c.Cache.TTL != 30*time.Minute {
		t.Errorf("ttl: got %v", c.Cache.TTL)
	}
	if c.Screener.Workers != 3 || len(c.Screener.Tickers) != 2 {
		t.Errorf("screener: %+v", c.Screener)
	}
	// untouched defaults survive
	if c.Indicators.RSIPeriods != 14 {
		t.Errorf("rsi periods default lost: %d", c.Indicators.RSIPeriods)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("STOCKSIGHT_TICKERS", "AAA,BBB,CCC")

	c, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key not applied")
	}
	if len(c.Screener.Tickers) != 3 || c.Screener.Tickers[1] != "BBB" {
		t.Errorf("tickers: %v", c.Screener.Tickers)
	}
}

func TestValidateRejectsBadWindows(t *testing.T) {
	c := Default()
	c.Indicators.MAShort = 50
	c.Indicators.MALong = 20
	if err := c.Validate(); err == nil {
		t.Error("expected error for ma_short >= ma_long")
	}

	c = Default()
	c.Indicators.VolatilityWindow = 1
	if err := c.Validate(); err == nil {
		t.Error("expected error for volatility_window <= 1")
	}
}
