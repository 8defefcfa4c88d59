package redis

import (
	"context"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

// SetHash writes every field of values under key. A positive exp sets the
// key expiry in the same transaction; zero leaves the key persistent.
func (r *redisRepository) SetHash(ctx context.Context, key string, values map[string]interface{}, exp time.Duration) error {
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, values)
	if exp > 0 {
		pipe.Expire(ctx, key, exp)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// GetHash returns an empty map when key does not exist.
func (r *redisRepository) GetHash(ctx context.Context, key string) (map[string]string, error) {
	data, err := r.client.HGetAll(ctx, key).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return exceptions.ErrRedisGet(err)
	}
	return nil
}
