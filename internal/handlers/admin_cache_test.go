package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/barberia-cr/barberia-api/internal/cache"
)

// brokenCache aponta para um redis inalcançável: toda invalidação falha.
func brokenCache() *cache.Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return cache.NewWithClient(rdb, time.Minute)
}

func adminTestContext() *gin.Context {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c
}

func TestInvalidateFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	h := NewAdminServicesHandler(nil, brokenCache(), zap.New(core))
	h.invalidate(adminTestContext())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "cache invalidation failed", entry.Message)
	assert.Equal(t, cache.KeyServices, entry.ContextMap()["key"])
}

func TestInvalidateFailureIsLoggedPerHandler(t *testing.T) {
	coreBarbers, logsBarbers := observer.New(zap.WarnLevel)
	NewAdminBarbersHandler(nil, brokenCache(), zap.New(coreBarbers)).
		invalidate(adminTestContext())
	require.Equal(t, 1, logsBarbers.Len())
	assert.Equal(t, cache.KeyBarbers, logsBarbers.All()[0].ContextMap()["key"])

	coreProducts, logsProducts := observer.New(zap.WarnLevel)
	NewAdminProductsHandler(nil, brokenCache(), zap.New(coreProducts)).
		invalidate(adminTestContext())
	require.Equal(t, 1, logsProducts.Len())
	assert.Equal(t, cache.KeyProducts, logsProducts.All()[0].ContextMap()["key"])
}

func TestInvalidateDisabledCacheIsSilent(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	h := NewAdminServicesHandler(nil, &cache.Cache{}, zap.New(core))
	h.invalidate(adminTestContext())

	assert.Zero(t, logs.Len())
}
