// Package cache implementa el puerto ports.CacheService: un adaptador Redis
// para producción y uno en memoria para desarrollo y tests. Ambos respetan el
// feature flag de cache: deshabilitada, toda lectura es miss y toda escritura
// no-op (fail-open hacia el camino sin cache, nunca fail-closed).
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var _ ports.CacheService = (*RedisCache)(nil)

// RedisCache cache de lecturas sobre Redis con payloads JSON.
type RedisCache struct {
	client  *redis.Client
	prefix  string
	enabled bool
	log     *logger.Logger
}

// NewRedisCache construye el adaptador. enabled=false apaga la cache sin
// tocar a los callers.
func NewRedisCache(client *redis.Client, prefix string, enabled bool, log *logger.Logger) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, enabled: enabled, log: log}
}

// Get deserializa en dest el valor cacheado; false si miss o cache apagada.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if !c.enabled {
		c.log.Debug().Str("key", key).Msg("cache deshabilitada, skip")
		return false, nil
	}
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			c.log.Debug().Str("key", key).Msg("cache MISS")
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal: %w", err)
	}
	c.log.Debug().Str("key", key).Msg("cache HIT")
	return true, nil
}

// Set guarda el valor con expiración absoluta ttl, sobreescribiendo la entrada previa.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	c.log.Debug().Str("key", key).Msg("cache SET")
	return nil
}

// Remove expulsa la entrada; no-op si no existe.
func (c *RedisCache) Remove(ctx context.Context, key string) error {
	if !c.enabled {
		return nil
	}
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("cache remove: %w", err)
	}
	c.log.Debug().Str("key", key).Msg("cache REMOVE")
	return nil
}
