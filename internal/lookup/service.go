package lookup

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
)

const (
	keyColaboradores  = "colaboradores"
	keyCentrosDeCusto = "centros_de_custo"
	keyCidades        = "cidades"

	// Registration data changes rarely; half a day keeps dropdowns fresh
	// without hammering the lookup endpoints.
	defaultTTL = 12 * time.Hour
)

// Client is the slice of the API client the lookup service needs.
type Client interface {
	Colaboradores(ctx context.Context) ([]api.Colaborador, error)
	CentrosDeCusto(ctx context.Context) ([]string, error)
	Cidades(ctx context.Context) ([]string, error)
}

// Service serves the registration lookups backing the form dropdowns.
// Results come from the local cache while fresh; fetches for the same key
// are collapsed so several screens opening at once trigger one request.
// When the network fails, a stale cache entry still serves.
type Service struct {
	client Client
	cache  *Cache
	logger *zap.Logger
	group  singleflight.Group
	ttl    time.Duration
}

func NewService(client Client, cache *Cache, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
		ttl:    defaultTTL,
	}
}

// Colaboradores returns the company collaborators for the traveler picker.
func (s *Service) Colaboradores(ctx context.Context) ([]api.Colaborador, error) {
	var cached []api.Colaborador
	return fetch(s, keyColaboradores, &cached, func() ([]api.Colaborador, error) {
		return s.client.Colaboradores(ctx)
	})
}

// CentrosDeCusto returns the cost center names.
func (s *Service) CentrosDeCusto(ctx context.Context) ([]string, error) {
	var cached []string
	return fetch(s, keyCentrosDeCusto, &cached, func() ([]string, error) {
		return s.client.CentrosDeCusto(ctx)
	})
}

// Cidades returns the serviced cities. When neither the server nor the
// cache can answer, the built-in list keeps the dropdown usable.
func (s *Service) Cidades(ctx context.Context) ([]string, error) {
	var cached []string
	cities, err := fetch(s, keyCidades, &cached, func() ([]string, error) {
		return s.client.Cidades(ctx)
	})
	if err != nil {
		s.logger.Warn("Falling back to built-in city list", zap.Error(err))
		return domain.Cities(), nil
	}
	return cities, nil
}

// Refresh drops the cached lookups so the next reads hit the server.
func (s *Service) Refresh() error {
	for _, key := range []string{keyColaboradores, keyCentrosDeCusto, keyCidades} {
		if err := s.cache.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// fetch resolves one lookup key: fresh cache wins, otherwise a single
// collapsed network fetch, otherwise stale cache.
func fetch[T any](s *Service, key string, cached *[]T, load func() ([]T, error)) ([]T, error) {
	fetchedAt, cacheErr := s.cache.Get(key, cached)
	if cacheErr == nil && time.Since(fetchedAt) < s.ttl {
		return *cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		items, err := load()
		if err != nil {
			return nil, err
		}
		if putErr := s.cache.Put(key, items); putErr != nil {
			s.logger.Warn("Failed to cache lookup",
				zap.String("key", key),
				zap.Error(putErr))
		}
		return items, nil
	})
	if err != nil {
		if cacheErr == nil {
			s.logger.Warn("Serving stale lookup after fetch failure",
				zap.String("key", key),
				zap.Error(err))
			return *cached, nil
		}
		return nil, err
	}

	return result.([]T), nil
}
