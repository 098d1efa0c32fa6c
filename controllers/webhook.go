package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"dhanbridge/config"
	"dhanbridge/metrics"
	"dhanbridge/models"
	"dhanbridge/orders"
	"dhanbridge/quotes"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Webhook translates inbound alerts into broker orders. Stateless: every
// request runs validate -> quote+expiry -> build -> forward and relays the
// outcome.
type Webhook struct {
	cfg     config.Config
	quotes  *quotes.Client
	forward *orders.Forwarder
	now     func() time.Time
	logger  *zap.Logger
}

func NewWebhook(cfg config.Config, q *quotes.Client, f *orders.Forwarder, logger *zap.Logger) *Webhook {
	return &Webhook{
		cfg:     cfg,
		quotes:  q,
		forward: f,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle implements POST /webhook.
func (h *Webhook) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("POST only"))
		return
	}

	logger := h.logger.With(zap.String("request_id", uuid.New().String()))

	// A body that isn't JSON decodes to a zero alert and is rejected below
	// on the secret check, same as an empty body.
	var alert models.Alert
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		alert = models.Alert{}
	}

	if subtle.ConstantTimeCompare([]byte(alert.Secret), []byte(h.cfg.Secret)) != 1 {
		metrics.AlertsReceived.WithLabelValues("bad_secret").Inc()
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"ok": false, "msg": models.ErrBadSecret.Error(),
		})
		return
	}
	if alert.Signal != models.SignalBuy && alert.Signal != models.SignalSell {
		metrics.AlertsReceived.WithLabelValues("bad_signal").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "msg": models.ErrBadSignal.Error(),
		})
		return
	}
	alert.ApplyDefaults()

	price, err := h.quotes.Ltp(r.Context())
	if err != nil {
		logger.Error("quote fetch failed", zap.Error(err))
		metrics.AlertsReceived.WithLabelValues("quote_error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error": err.Error(),
		})
		return
	}
	strike := quotes.NearestStrike(price)
	expiry := orders.WeeklyExpiry(h.now())

	doc := orders.Build(alert, h.cfg.Secret, strike, expiry)
	logger.Info("order built",
		zap.String("signal", string(alert.Signal)),
		zap.String("symbol", doc.OrderLegs[0].Symbol),
		zap.Float64("ltp", price),
		zap.Int("strike", strike),
		zap.String("expiry", expiry),
		zap.String("quantity", doc.OrderLegs[0].Quantity),
	)

	reply, err := h.forward.Forward(r.Context(), doc)
	if err != nil {
		logger.Error("order forward failed", zap.Error(err))
		metrics.AlertsReceived.WithLabelValues("forward_error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error": err.Error(),
		})
		return
	}

	metrics.AlertsReceived.WithLabelValues("forwarded").Inc()
	metrics.OrdersForwarded.WithLabelValues(doc.OrderLegs[0].OptionType).Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true, "forwarded": true, "dh": reply,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
