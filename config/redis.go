package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(url string) (*RedisClient, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisClient{client: redis.NewClient(opt)}, nil
}

func (r *RedisClient) SetVal(ctx context.Context, key string, val string) error {
	return r.client.Set(ctx, key, val, 0).Err()
}

func (r *RedisClient) GetVal(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}
