package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:        8080,
		Secret:      "U7SQS",
		QuoteURL:    "https://api.dhan.co/market/live/quotes",
		OrderURL:    "https://api.dhan.co/smartorders/v1/placeMultiLegOrder",
		AccessToken: "token",
		QuoteMode:   QuoteModeQuotes,
		Instrument:  "NIFTY 50",
		HTTPTimeout: 10 * time.Second,
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret", func(c *Config) { c.Secret = "" }},
		{"missing quote url", func(c *Config) { c.QuoteURL = "" }},
		{"missing order url", func(c *Config) { c.OrderURL = "" }},
		{"no token and no redis", func(c *Config) { c.AccessToken = ""; c.RedisURL = "" }},
		{"bad quote mode", func(c *Config) { c.QuoteMode = "websocket" }},
		{"bad port", func(c *Config) { c.Port = -1 }},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_RedisInsteadOfStaticToken(t *testing.T) {
	cfg := validConfig()
	cfg.AccessToken = ""
	cfg.RedisURL = "redis://localhost:6379"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DHAN_SECRET", "S")
	t.Setenv("DHAN_QUOTE_URL", "http://quote")
	t.Setenv("DHAN_WEBHOOK_URL", "http://order")
	t.Setenv("DHAN_ACCESS_TOKEN", "T")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, QuoteModeQuotes, cfg.QuoteMode)
	assert.Equal(t, "NIFTY 50", cfg.Instrument)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DHAN_SECRET", "S")
	t.Setenv("DHAN_QUOTE_URL", "http://quote")
	t.Setenv("DHAN_WEBHOOK_URL", "http://order")
	t.Setenv("DHAN_ACCESS_TOKEN", "T")
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTE_MODE", "ltp")
	t.Setenv("QUOTE_SECURITY_ID", "25")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, QuoteModeLTP, cfg.QuoteMode)
	assert.Equal(t, "25", cfg.SecurityID)
}
