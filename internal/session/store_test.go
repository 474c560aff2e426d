package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTokenRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	assert.Empty(t, store.Token(), "fresh store starts logged out")

	require.NoError(t, store.SaveToken("abc123"))
	assert.Equal(t, "abc123", store.Token())
}

func TestProfileRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), zap.NewNop())

	assert.Nil(t, store.Profile())

	p := &Profile{ID: 1, Nome: "Ana", Email: "ana@compele.com.br", Perfil: "Aprovador"}
	require.NoError(t, store.SaveProfile(p))

	got := store.Profile()
	require.NotNil(t, got)
	assert.Equal(t, *p, *got)
}

func TestClearRemovesBothFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())

	require.NoError(t, store.SaveToken("abc"))
	require.NoError(t, store.SaveProfile(&Profile{Nome: "Ana"}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Profile())

	// Clearing an already-clean store is fine.
	require.NoError(t, store.Clear())
}

func TestStorageFileNames(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, zap.NewNop())
	require.NoError(t, store.SaveToken("abc"))
	require.NoError(t, store.SaveProfile(&Profile{Nome: "Ana"}))

	for _, name := range []string{"Compele-ChaveAcesso", "Compele-DadosUsuario"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected state file %s", name)
	}
}

func TestCorruptProfileReadsAsNil(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Compele-DadosUsuario"), []byte("{not json"), 0600))

	store := NewStore(dir, zap.NewNop())
	assert.Nil(t, store.Profile())
}

func TestProfileRoles(t *testing.T) {
	tests := []struct {
		perfil   string
		approver bool
		admin    bool
	}{
		{"Aprovador", true, false},
		{"aprovador", true, false},
		{"Admin", true, true},
		{"admin", true, true},
		{"Solicitante", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		p := &Profile{Perfil: tt.perfil}
		assert.Equal(t, tt.approver, p.IsApprover(), "perfil %q approver", tt.perfil)
		assert.Equal(t, tt.admin, p.IsAdmin(), "perfil %q admin", tt.perfil)
	}

	var nilProfile *Profile
	assert.False(t, nilProfile.IsApprover())
	assert.False(t, nilProfile.IsAdmin())
}
