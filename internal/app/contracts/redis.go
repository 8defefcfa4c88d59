package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	SetHash(ctx context.Context, key string, values map[string]interface{}, exp time.Duration) error
	GetHash(ctx context.Context, key string) (map[string]string, error)
	Ping(ctx context.Context) error
}
