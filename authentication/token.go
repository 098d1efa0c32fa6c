package authentication

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"dhanbridge/config"

	"go.uber.org/zap"
)

// TokenHandler rotates the broker access token at runtime. The token is
// written to redis, where the outbound clients read it per request. Only
// available when redis is configured; with a static env token a restart is
// the rotation mechanism.
type TokenHandler struct {
	cfg    config.Config
	store  config.TokenWriter
	logger *zap.Logger
}

// NewTokenHandler wraps the shared redis client built in main; redis may be
// nil when only a static token is configured.
func NewTokenHandler(cfg config.Config, redis *config.RedisClient, logger *zap.Logger) *TokenHandler {
	h := &TokenHandler{cfg: cfg, logger: logger}
	if redis != nil {
		h.store = redis
	}
	return h
}

type setTokenRequest struct {
	Secret string `json:"secret"`
	Token  string `json:"token"`
}

// SetToken implements POST /auth/settoken, guarded by the same shared
// secret as the webhook.
func (h *TokenHandler) SetToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("POST only"))
		return
	}

	var req setTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = setTokenRequest{}
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.cfg.Secret)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if h.store == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("token rotation requires REDIS_URL"))
		return
	}
	if req.Token == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("token is required"))
		return
	}

	if err := config.StoreToken(r.Context(), h.store, req.Token); err != nil {
		h.logger.Error("token rotation failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.logger.Info("access token rotated")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("token updated"))
}
