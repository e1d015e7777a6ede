package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"toolbox/internal/gateway/metrics"
	"toolbox/internal/gateway/ports/cache"
	"toolbox/pkg/logger"
)

// Константы для кэширования.
const (
	ConvertCacheKeyPrefix = "convert:"
	RomanCacheKeyPrefix   = "roman:"

	cacheOperationTimeout = 2 * time.Second
)

// Константы для логирования.
const (
	LogCacheHit        = "result found in cache"
	LogCacheReadFailed = "failed to read result from cache"
	LogCacheDecodeBad  = "cached result is malformed"
	LogCacheSetFailed  = "failed to cache result"
)

// ResultCache хранит детерминированные результаты инструментов. Ошибки кэша
// не влияют на ответ. Одновременные промахи по одному ключу вычисляются один раз.
type ResultCache struct {
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Collector
	group   singleflight.Group
}

// NewResultCache создает кэш результатов поверх c.
func NewResultCache(c cache.Cache, ttl time.Duration, m *metrics.Collector) *ResultCache {
	return &ResultCache{cache: c, ttl: ttl, metrics: m}
}

// CacheKey возвращает ключ prefix + sha256 от частей.
func CacheKey(prefix string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return prefix + hex.EncodeToString(h.Sum(nil))
}

// cached возвращает результат из кэша или вычисляет и сохраняет его.
// Ошибки compute не кэшируются.
func cached[T any](ctx context.Context, rc *ResultCache, key string, compute func() (T, error)) (T, error) {
	if rc == nil {
		return compute()
	}
	log := logger.Log(ctx).With(zap.String("key", key))

	if value, ok := rc.lookup(ctx, log, key); ok {
		var out T
		if err := json.Unmarshal([]byte(value), &out); err == nil {
			log.Debug(ctx, LogCacheHit)
			rc.metrics.CacheHit()
			return out, nil
		}
		log.Warn(ctx, LogCacheDecodeBad)
	}
	rc.metrics.CacheMiss()

	v, err, _ := rc.group.Do(key, func() (any, error) {
		out, err := compute()
		if err != nil {
			return out, err
		}
		rc.store(ctx, log, key, out)
		return out, nil
	})
	out, _ := v.(T)
	return out, err
}

func (rc *ResultCache) lookup(ctx context.Context, log *logger.Logger, key string) (string, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, cacheOperationTimeout)
	defer cancel()

	value, err := rc.cache.Get(cacheCtx, key)
	if err != nil {
		log.Warn(ctx, LogCacheReadFailed, zap.Error(err))
		return "", false
	}
	return value, value != ""
}

func (rc *ResultCache) store(ctx context.Context, log *logger.Logger, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn(ctx, LogCacheSetFailed, zap.Error(err))
		return
	}

	cacheCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheOperationTimeout)
	defer cancel()

	if err := rc.cache.Set(cacheCtx, key, string(data), rc.ttl); err != nil {
		log.Warn(ctx, LogCacheSetFailed, zap.Error(err))
	}
}
