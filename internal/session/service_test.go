package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
)

type mockLoginClient struct {
	resp *api.LoginResponse
	err  error
}

func (m *mockLoginClient) Login(context.Context, string, string) (*api.LoginResponse, error) {
	return m.resp, m.err
}

func TestLoginPersistsSession(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	client := &mockLoginClient{resp: &api.LoginResponse{
		Token: "tok", ID: 9, Nome: "Ana", Email: "ana@compele.com.br", Perfil: "Aprovador",
	}}
	svc := NewService(store, client, zap.NewNop())

	profile, err := svc.Login(context.Background(), "ana@compele.com.br", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Nome)

	assert.Equal(t, "tok", store.Token())
	stored := store.Profile()
	require.NotNil(t, stored)
	assert.Equal(t, "Aprovador", stored.Perfil)
}

func TestLoginFailurePersistsNothing(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	svc := NewService(store, &mockLoginClient{err: errors.New("bad credentials")}, zap.NewNop())

	_, err := svc.Login(context.Background(), "x@y.z", "nope")
	assert.Error(t, err)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Profile())
}

func TestRequireGuard(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	svc := NewService(store, &mockLoginClient{}, zap.NewNop())

	_, err := svc.Require()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, store.SaveToken("tok"))
	require.NoError(t, store.SaveProfile(&Profile{Nome: "Ana"}))

	profile, err := svc.Require()
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Nome)
}

func TestLogoutThenRequireFails(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())
	svc := NewService(store, &mockLoginClient{}, zap.NewNop())

	require.NoError(t, store.SaveToken("tok"))
	require.NoError(t, svc.Logout())

	_, err := svc.Require()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
