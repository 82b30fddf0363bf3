package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberia-cr/barberia-api/internal/config"
)

// Chaves das coleções públicas cacheadas.
const (
	KeyServices = "catalog:services"
	KeyBarbers  = "catalog:barbers"
	KeyProducts = "catalog:products"
)

// Cache é um read-through simples sobre Redis para as listagens públicas
// do catálogo. Sem REDIS_ADDR configurado o cache fica desligado e todos
// os métodos viram no-op.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg *config.Config) (*Cache, error) {
	if cfg.RedisAddr == "" {
		return &Cache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Cache{rdb: rdb, ttl: 5 * time.Minute}, nil
}

// NewWithClient monta o cache sobre um cliente já construído, sem ping.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON tenta preencher dest a partir do cache. found == false em miss,
// cache desligado ou erro de decodificação.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if !c.Enabled() {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate remove as chaves após mutação no admin.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
