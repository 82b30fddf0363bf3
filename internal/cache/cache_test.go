package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-cr/barberia-api/internal/config"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	c, err := New(&config.Config{})
	require.NoError(t, err)

	assert.False(t, c.Enabled())

	ctx := context.Background()

	var dest []string
	found, err := c.GetJSON(ctx, KeyServices, &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)

	assert.NoError(t, c.SetJSON(ctx, KeyServices, []string{"corte"}))
	assert.NoError(t, c.Invalidate(ctx, KeyServices, KeyBarbers))
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())
}
