// Package cache keeps slow-moving reference data (currency display scales)
// in Redis so dashboard table loads don't hit the data API on every render.
// Redis being unavailable is never fatal; reads fall through to the source.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/pkg/models"
)

const scalesKey = "deskd:refdata:scales"

// CurrencySource fetches currencies from the data API.
type CurrencySource interface {
	Currencies(ctx context.Context, token string) ([]models.Currency, error)
}

// ReferenceData serves currency display scales, cached with a TTL.
type ReferenceData struct {
	rdb    *redis.Client
	source CurrencySource
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a reference-data cache. With caching disabled in config the
// returned instance reads straight from the source.
func New(cfg config.RedisConfig, source CurrencySource, logger *zap.Logger) *ReferenceData {
	var rdb *redis.Client
	if cfg.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}
	return &ReferenceData{rdb: rdb, source: source, ttl: cfg.TTL, logger: logger}
}

// DisplayScales returns the ticker-to-display-scale map for all currencies.
func (r *ReferenceData) DisplayScales(ctx context.Context, token string) (map[string]int, error) {
	if r.rdb != nil {
		raw, err := r.rdb.Get(ctx, scalesKey).Bytes()
		if err == nil {
			var scales map[string]int
			if err := json.Unmarshal(raw, &scales); err == nil {
				return scales, nil
			}
			// Poisoned entry; drop it and refetch.
			r.rdb.Del(ctx, scalesKey)
		} else if err != redis.Nil {
			r.logger.Warn("redis read failed, falling back to data API", zap.Error(err))
		}
	}

	currencies, err := r.source.Currencies(ctx, token)
	if err != nil {
		return nil, err
	}
	scales := make(map[string]int, len(currencies))
	for _, c := range currencies {
		scales[c.Ticker] = c.DisplayScale
	}

	if r.rdb != nil {
		if raw, err := json.Marshal(scales); err == nil {
			if err := r.rdb.Set(ctx, scalesKey, raw, r.ttl).Err(); err != nil {
				r.logger.Warn("redis write failed", zap.Error(err))
			}
		}
	}
	return scales, nil
}

// Close releases the Redis connection.
func (r *ReferenceData) Close() error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}
