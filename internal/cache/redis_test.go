// internal/cache/redis_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse414/catalog-backend/internal/config"
)

func TestDisabledCacheIsNil(t *testing.T) {
	c, err := New(config.RedisConfig{Enabled: false})

	assert.NoError(t, err)
	assert.Nil(t, c)
}

// Services call the cache unconditionally, including the write-side
// invalidation, so a nil *Cache must be a no-op for every method.
func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest []string
	assert.False(t, c.GetJSON(ctx, "key", &dest))

	c.SetJSON(ctx, "key", []string{"value"}, time.Minute)
	c.Invalidate(ctx, "catalog:featured")
	c.Close()
}
