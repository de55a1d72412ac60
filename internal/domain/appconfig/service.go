package appconfig

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheKey = "appconfig"

// DefaultCacheTTL bounds how stale a cached configuration read can be.
const DefaultCacheTTL = 5 * time.Minute

// Service serves the configuration document through an in-process expiring
// cache. The document is read on nearly every page of the front end, so
// reads skip the database until the entry expires or an update evicts it.
type Service struct {
	repo  Repository
	cache *expirable.LRU[string, *AppConfig]
}

// NewService creates a new app-config service with the given cache TTL.
func NewService(repo Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		repo:  repo,
		cache: expirable.NewLRU[string, *AppConfig](1, nil, ttl),
	}
}

// GetConfig returns the configuration, served from cache when fresh.
func (s *Service) GetConfig(ctx context.Context) (*AppConfig, error) {
	if cfg, ok := s.cache.Get(cacheKey); ok {
		return cfg, nil
	}
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheKey, cfg)
	return cfg, nil
}

// UpdateConfig replaces the configuration document and evicts the cache so
// the next read sees the new values.
func (s *Service) UpdateConfig(ctx context.Context, cfg *AppConfig) error {
	if strings.TrimSpace(cfg.ClinicName) == "" {
		return fmt.Errorf("clinic_name is required")
	}
	if cfg.AppointmentFee < 0 {
		return fmt.Errorf("appointment_fee cannot be negative")
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return err
	}
	s.cache.Remove(cacheKey)
	return nil
}
