package lookup

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/pkg/database"
)

type mockClient struct {
	colaboradores []api.Colaborador
	centros       []string
	cidades       []string
	err           error

	colaboradoresCalls int
	cidadesCalls       int
}

func (m *mockClient) Colaboradores(context.Context) ([]api.Colaborador, error) {
	m.colaboradoresCalls++
	return m.colaboradores, m.err
}

func (m *mockClient) CentrosDeCusto(context.Context) ([]string, error) {
	return m.centros, m.err
}

func (m *mockClient) Cidades(context.Context) ([]string, error) {
	m.cidadesCalls++
	return m.cidades, m.err
}

func newService(t *testing.T, client Client) *Service {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "cache.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, err := NewCache(db)
	require.NoError(t, err)
	return NewService(client, cache, zap.NewNop())
}

func TestFreshCacheSkipsNetwork(t *testing.T) {
	client := &mockClient{colaboradores: []api.Colaborador{{ID: 1, Nome: "Ana"}}}
	svc := newService(t, client)
	ctx := context.Background()

	first, err := svc.Colaboradores(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, client.colaboradoresCalls)

	second, err := svc.Colaboradores(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.colaboradoresCalls, "fresh cache must answer without the network")
}

func TestStaleCacheServesOnNetworkFailure(t *testing.T) {
	client := &mockClient{cidades: []string{"Recife", "Natal"}}
	svc := newService(t, client)
	svc.ttl = 0 // every entry is immediately stale
	ctx := context.Background()

	first, err := svc.Cidades(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Recife", "Natal"}, first)

	client.err = errors.New("network down")
	second, err := svc.Cidades(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "stale cache beats a failing network")
}

func TestCidadesFallsBackToBuiltinList(t *testing.T) {
	client := &mockClient{err: errors.New("network down")}
	svc := newService(t, client)

	cities, err := svc.Cidades(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Cities(), cities)
}

func TestColaboradoresErrorWithEmptyCache(t *testing.T) {
	client := &mockClient{err: errors.New("network down")}
	svc := newService(t, client)

	_, err := svc.Colaboradores(context.Background())
	assert.Error(t, err)
}

func TestCacheRoundTrip(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "cache.db"), zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	cache, err := NewCache(db)
	require.NoError(t, err)

	var out []string
	_, err = cache.Get("missing", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Put("k", []string{"a", "b"}))
	fetchedAt, err := cache.Get("k", &out)
	require.NoError(t, err)
	assert.False(t, fetchedAt.IsZero())
	assert.Equal(t, []string{"a", "b"}, out)

	// Overwrite replaces the payload.
	require.NoError(t, cache.Put("k", []string{"c"}))
	_, err = cache.Get("k", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, out)
}

func TestRefreshDropsCache(t *testing.T) {
	client := &mockClient{colaboradores: []api.Colaborador{{ID: 1, Nome: "Ana"}}}
	svc := newService(t, client)
	ctx := context.Background()

	_, err := svc.Colaboradores(ctx)
	require.NoError(t, err)
	_, err = svc.Colaboradores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, client.colaboradoresCalls)

	require.NoError(t, svc.Refresh())
	_, err = svc.Colaboradores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, client.colaboradoresCalls, "refresh must force a server fetch")
}
