package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
)

var (
	_ analytics.Cache = Noop{}
	_ analytics.Cache = (*RedisCache)(nil)
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	c := Noop{}

	c.Set(ctx, "summary", []byte("{}"), time.Minute)
	_, ok := c.Get(ctx, "summary")
	assert.False(t, ok)
	c.Invalidate(ctx)
}

func TestNewRedisCache(t *testing.T) {
	c, err := NewRedisCache("redis://localhost:6379/2", "analytics:", nil)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "analytics:summary", c.key("summary"))

	_, err = NewRedisCache("not a url", "analytics:", nil)
	assert.Error(t, err)
}
