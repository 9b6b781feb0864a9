package analytics

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	"github.com/BruksfildServices01/dental-clinic/internal/logger"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
)

// cached returns the value stored under key, or computes, stores and
// returns it. Cache failures only cost a recomputation.
func cached[T any](
	ctx context.Context,
	cache domain.Cache,
	ttl time.Duration,
	key string,
	compute func() (T, error),
) (T, error) {

	if raw, ok := cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			metrics.AnalyticsCacheTotal.WithLabelValues("hit").Inc()
			return v, nil
		}
		logger.FromContext(ctx).WithField("key", key).Warn("discarding unreadable analytics cache entry")
	}
	metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()

	v, err := compute()
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		cache.Set(ctx, key, raw, ttl)
	}
	return v, nil
}
