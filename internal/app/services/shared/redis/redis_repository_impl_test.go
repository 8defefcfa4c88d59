package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &redisRepository{client: client}
}

func TestRedisRepositoryHash(t *testing.T) {
	ctx := context.Background()

	t.Run("Set And Get Without Expiry", func(t *testing.T) {
		mr, repo := newTestRepository(t)

		err := repo.SetHash(ctx, "ehr", map[string]interface{}{"apiKey": "k", "accessToken": "a"}, 0)
		require.NoError(t, err)

		data, err := repo.GetHash(ctx, "ehr")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"apiKey": "k", "accessToken": "a"}, data)
		assert.Equal(t, time.Duration(0), mr.TTL("ehr"), "key should not expire")
	})

	t.Run("Set With Expiry", func(t *testing.T) {
		mr, repo := newTestRepository(t)

		err := repo.SetHash(ctx, "ehr:session:1", map[string]interface{}{"apiKey": "k"}, time.Hour)
		require.NoError(t, err)

		assert.Equal(t, time.Hour, mr.TTL("ehr:session:1"))
		mr.FastForward(2 * time.Hour)
		data, err := repo.GetHash(ctx, "ehr:session:1")
		require.NoError(t, err)
		assert.Empty(t, data, "expired key should read as empty")
	})

	t.Run("Missing Key", func(t *testing.T) {
		_, repo := newTestRepository(t)

		data, err := repo.GetHash(ctx, "missing")

		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("Server Down", func(t *testing.T) {
		mr, repo := newTestRepository(t)
		mr.Close()

		_, err := repo.GetHash(ctx, "ehr")
		assert.Error(t, err)
		assert.Error(t, repo.Ping(ctx))
	})
}
