package service

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/models"
)

const (
	cacheKeyHealth = "system:health"
	cacheKeyInfo   = "system:info"
	cacheKeyStats  = "knowledge:stats"
)

type systemService struct {
	adapter adapter.ServerAdapter
	cache   *cache.Cache
}

func NewSystemService(serverAdapter adapter.ServerAdapter, readCache *cache.Cache) SystemService {
	return &systemService{adapter: serverAdapter, cache: readCache}
}

func (s *systemService) Health(ctx context.Context) (models.Health, error) {
	return cached(s.cache, cacheKeyHealth, func() (models.Health, error) {
		h, err := s.adapter.Health(ctx)
		if err != nil {
			return models.Health{}, fmt.Errorf("check backend health: %w", err)
		}
		return h, nil
	})
}

func (s *systemService) Info(ctx context.Context) (models.ServiceInfo, error) {
	return cached(s.cache, cacheKeyInfo, func() (models.ServiceInfo, error) {
		info, err := s.adapter.ServiceInfo(ctx)
		if err != nil {
			return models.ServiceInfo{}, fmt.Errorf("load service info: %w", err)
		}
		return info, nil
	})
}

func (s *systemService) Stats(ctx context.Context) (models.KnowledgeStats, error) {
	return cached(s.cache, cacheKeyStats, func() (models.KnowledgeStats, error) {
		stats, err := s.adapter.KnowledgeStats(ctx)
		if err != nil {
			return models.KnowledgeStats{}, fmt.Errorf("load knowledge stats: %w", err)
		}
		return stats, nil
	})
}

func (s *systemService) Invalidate() {
	s.cache.Flush()
}

// cached returns the value under key, calling load on a miss. Failed loads
// are not cached.
func cached[T any](c *cache.Cache, key string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	c.SetDefault(key, v)
	return v, nil
}
