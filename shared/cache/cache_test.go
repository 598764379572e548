package cache_test

import (
	"context"
	"errors"
	"testing"
	"travel/infras/otel/mocks"
	"travel/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	redisCache := cache.NewRedisCache(nil, mocks.NewOtel())

	assert.NoError(t, redisCache.Save(ctx, "report:flight-details", map[string]string{"a": "b"}, 60))

	var value map[string]string

	err := redisCache.Get(ctx, "report:flight-details", &value)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Nil(t, value)

	assert.NoError(t, redisCache.Delete(ctx, "report:flight-details"))
	assert.NoError(t, redisCache.Clear(ctx, "report:"))
}
