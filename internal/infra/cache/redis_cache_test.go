package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beautymarket/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutRedisReturnsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := New(Params{Lc: lc, Config: &config.Config{}, Logger: slog.Default()})
	require.NoError(t, err)

	_, ok := c.(noopCache)
	assert.True(t, ok)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	var dest string
	hit, err := c.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePattern(ctx, "products:*"))
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client)

	var dest map[string]any
	hit, err := c.Get(context.Background(), "products:page_1", &dest)
	assert.Error(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Delete(context.Background()))
	assert.Error(t, c.DeletePattern(context.Background(), "products*"))
}
