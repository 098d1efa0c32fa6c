package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"dhanbridge/config"
	"dhanbridge/models"

	"go.uber.org/zap"
)

// Client fetches the underlying's last traded price from the broker's quote
// API. One outbound call per invocation, no caching, no retry.
type Client struct {
	cfg    config.Config
	tokens config.TokenSource
	http   *http.Client
	logger *zap.Logger
}

func NewClient(cfg config.Config, tokens config.TokenSource, logger *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		tokens: tokens,
		http:   &http.Client{Timeout: cfg.HTTPTimeout},
		logger: logger,
	}
}

// Ltp returns the underlying's current price using whichever call shape the
// config selects.
func (c *Client) Ltp(ctx context.Context) (float64, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, fmt.Errorf("quote: access token: %w", err)
	}

	var req *http.Request
	switch c.cfg.QuoteMode {
	case config.QuoteModeLTP:
		url := fmt.Sprintf("%s?securityId=%s", c.cfg.QuoteURL, c.cfg.SecurityID)
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, err
		}
	default:
		body, err := json.Marshal(models.QuoteRequest{
			ExchangeSegment: "NSE_EQ",
			Instrument:      c.cfg.Instrument,
		})
		if err != nil {
			return 0, err
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.QuoteURL, bytes.NewBuffer(body))
		if err != nil {
			return 0, err
		}
		req.Header.Add("Content-Type", "application/json")
	}
	req.Header.Add("access-token", token)
	req.Header.Add("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("quote: fetch: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("quote: read body: %w", err)
	}

	var quote models.QuoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		c.logger.Warn("quote body not parseable", zap.ByteString("body", body))
		return 0, fmt.Errorf("quote: parse %q: %w", string(body), err)
	}

	price := quote.Price()
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, fmt.Errorf("quote: no usable price in %q", string(body))
	}
	return price, nil
}

// NearestStrike rounds a price to the nearest 50-point strike, ties away
// from zero.
func NearestStrike(price float64) int {
	return int(math.Round(price/50)) * 50
}
