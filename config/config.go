package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// QuoteMode selects which of the broker's two quote call shapes is used.
type QuoteMode string

const (
	// QuoteModeQuotes POSTs {exchangeSegment, instrument} and reads lastPrice.
	QuoteModeQuotes QuoteMode = "quotes"
	// QuoteModeLTP GETs with a security id query param and reads ltp.
	QuoteModeLTP QuoteMode = "ltp"
)

// Config holds everything the service reads from the environment. It is
// loaded once in main and passed into each component at construction time,
// so nothing reads os.Getenv after startup.
type Config struct {
	Port int

	// Shared secret expected in every inbound alert.
	Secret string

	// Broker endpoints and auth.
	QuoteURL    string
	OrderURL    string
	AccessToken string
	QuoteMode   QuoteMode

	// Quote instrument identity. Instrument is the POST-mode body value,
	// SecurityID the GET-mode query value.
	Instrument string
	SecurityID string

	// Optional: when set, the access token is read from redis per request
	// instead of AccessToken, so it can be rotated without a restart.
	RedisURL string

	// Timeout applied to both outbound calls.
	HTTPTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:        8080,
		Secret:      os.Getenv("DHAN_SECRET"),
		QuoteURL:    os.Getenv("DHAN_QUOTE_URL"),
		OrderURL:    os.Getenv("DHAN_WEBHOOK_URL"),
		AccessToken: os.Getenv("DHAN_ACCESS_TOKEN"),
		QuoteMode:   QuoteModeQuotes,
		Instrument:  "NIFTY 50",
		SecurityID:  "13",
		RedisURL:    os.Getenv("REDIS_URL"),
		HTTPTimeout: 10 * time.Second,
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("QUOTE_MODE"); v != "" {
		cfg.QuoteMode = QuoteMode(v)
	}
	if v := os.Getenv("QUOTE_INSTRUMENT"); v != "" {
		cfg.Instrument = v
	}
	if v := os.Getenv("QUOTE_SECURITY_ID"); v != "" {
		cfg.SecurityID = v
	}
	return cfg
}

// Validate returns the first configuration problem found, so startup can
// fail before any alert is accepted rather than on the first request.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("DHAN_SECRET is required")
	}
	if c.QuoteURL == "" {
		return errors.New("DHAN_QUOTE_URL is required")
	}
	if c.OrderURL == "" {
		return errors.New("DHAN_WEBHOOK_URL is required")
	}
	if c.AccessToken == "" && c.RedisURL == "" {
		return errors.New("either DHAN_ACCESS_TOKEN or REDIS_URL is required")
	}
	if c.QuoteMode != QuoteModeQuotes && c.QuoteMode != QuoteModeLTP {
		return fmt.Errorf("QUOTE_MODE must be %q or %q, got %q", QuoteModeQuotes, QuoteModeLTP, c.QuoteMode)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT (%d) out of range", c.Port)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}
	return nil
}
