package config

/*
 * The broker issues long-lived static access tokens rotated by hand.
 * Two ways to get one to the outbound calls:
 * - static: token read from the env once at startup
 * - redis: token read from the "access_token" key per request, so a new
 *   token can be pushed (see authentication.TokenHandler) without a
 *   restart
 */

import "context"

const tokenKey = "access_token"

// TokenSource yields the broker access token for an outbound request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenWriter stores a rotated token. *RedisClient satisfies it.
type TokenWriter interface {
	SetVal(ctx context.Context, key string, val string) error
}

type staticTokenSource struct {
	token string
}

func (s staticTokenSource) Token(context.Context) (string, error) {
	return s.token, nil
}

type redisTokenSource struct {
	client *RedisClient
}

func (r redisTokenSource) Token(ctx context.Context) (string, error) {
	return r.client.GetVal(ctx, tokenKey)
}

// StoreToken writes a rotated token where redisTokenSource reads it.
func StoreToken(ctx context.Context, store TokenWriter, token string) error {
	return store.SetVal(ctx, tokenKey, token)
}

// NewTokenSource yields tokens from redis when a client is provided,
// otherwise the static env token. The process owns a single redis client,
// built in main and shared with the rotation handler.
func NewTokenSource(cfg Config, client *RedisClient) TokenSource {
	if client != nil {
		return redisTokenSource{client: client}
	}
	return staticTokenSource{token: cfg.AccessToken}
}
