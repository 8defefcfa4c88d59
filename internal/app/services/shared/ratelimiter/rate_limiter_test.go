package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutboundLimiter(t *testing.T) {
	t.Run("Unlimited Never Blocks", func(t *testing.T) {
		limiter := NewOutboundLimiter(0)

		assert.False(t, limiter.Enabled())
		for i := 0; i < 100; i++ {
			assert.NoError(t, limiter.Wait(context.Background()))
		}
	})

	t.Run("Burst Then Wait Honours Context", func(t *testing.T) {
		limiter := NewOutboundLimiter(1)
		assert.True(t, limiter.Enabled())

		assert.NoError(t, limiter.Wait(context.Background()), "first token comes from the burst")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Wait(ctx), "second token should not arrive before the deadline")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, NewOutboundLimiter(0).Wait(ctx))
	})
}
