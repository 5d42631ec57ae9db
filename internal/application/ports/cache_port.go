// Package ports define puertos compartidos entre casos de uso.
package ports

import (
	"context"
	"time"
)

// Claves de cache. Son agregados gruesos: cualquier escritura dentro del
// alcance del agregado invalida la clave completa.
const (
	CacheKeyStockSummary = "reports:stock-summary"
)

// CacheService puerto de cache de lectura (read-through). La cache es
// best-effort, nunca autoritativa: un error de cache jamás debe impedir
// el camino sin cache.
type CacheService interface {
	// Get deserializa en dest el valor cacheado. Devuelve false (miss) si la
	// clave no existe, expiró o la cache está deshabilitada por feature flag.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set guarda el valor con expiración absoluta ttl desde ahora,
	// sobreescribiendo cualquier entrada previa. No-op si está deshabilitada.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Remove expulsa la entrada si existe. No-op si no existe o está deshabilitada.
	Remove(ctx context.Context, key string) error
}
