package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dhanbridge/config"
	"dhanbridge/models"

	"go.uber.org/zap"
)

// Forwarder posts assembled order documents to the broker's order webhook.
// One attempt per order; any transport failure is terminal for the request.
type Forwarder struct {
	cfg    config.Config
	tokens config.TokenSource
	http   *http.Client
	logger *zap.Logger
}

func NewForwarder(cfg config.Config, tokens config.TokenSource, logger *zap.Logger) *Forwarder {
	return &Forwarder{
		cfg:    cfg,
		tokens: tokens,
		http:   &http.Client{Timeout: cfg.HTTPTimeout},
		logger: logger,
	}
}

// Forward sends the document and returns the broker's reply. The broker's
// HTTP status is logged but not treated as a failure: once the request made
// the wire, the caller is told the order was forwarded and gets the body to
// judge for itself.
func (f *Forwarder) Forward(ctx context.Context, doc models.OrderDocument) (models.BrokerReply, error) {
	token, err := f.tokens.Token(ctx)
	if err != nil {
		return models.BrokerReply{}, fmt.Errorf("forward: access token: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return models.BrokerReply{}, fmt.Errorf("forward: marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.OrderURL, bytes.NewBuffer(payload))
	if err != nil {
		return models.BrokerReply{}, err
	}
	req.Header.Add("access-token", token)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	res, err := f.http.Do(req)
	if err != nil {
		return models.BrokerReply{}, fmt.Errorf("forward: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.BrokerReply{}, fmt.Errorf("forward: read reply: %w", err)
	}

	reply := models.ParseBrokerReply(body)
	f.logger.Info("order forwarded",
		zap.Int("broker_status", res.StatusCode),
		zap.Bool("reply_json", reply.Parsed != nil),
	)
	return reply, nil
}
