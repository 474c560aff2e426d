package files

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/notify"
)

type mockClient struct {
	files     []domain.StoredFile
	listErr   error
	uploadErr func(name string) error

	listCalls   int
	uploadCalls []string
	deleteCalls []int64
	content     []byte
}

func (m *mockClient) ListFiles(context.Context) ([]domain.StoredFile, error) {
	m.listCalls++
	return m.files, m.listErr
}

func (m *mockClient) DownloadFile(context.Context, int64) ([]byte, error) {
	return m.content, nil
}

func (m *mockClient) UploadFile(_ context.Context, filename string, _ []byte) error {
	m.uploadCalls = append(m.uploadCalls, filename)
	if m.uploadErr != nil {
		return m.uploadErr(filename)
	}
	return nil
}

func (m *mockClient) DeleteFile(_ context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return nil
}

func newVM(t *testing.T, client *mockClient) (*ViewModel, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	sink := NewLocalSink(t.TempDir(), zap.NewNop())
	return NewViewModel(client, sink, rec, zap.NewNop()), rec
}

func TestUploadAllContinuesPastFailures(t *testing.T) {
	client := &mockClient{uploadErr: func(name string) error {
		if name == "b.pdf" {
			return errors.New("boom")
		}
		return nil
	}}
	vm, rec := newVM(t, client)

	results := vm.UploadAll(context.Background(), []Upload{
		{Name: "a.pdf", Content: []byte("a")},
		{Name: "b.pdf", Content: []byte("b")},
		{Name: "c.pdf", Content: []byte("c")},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, client.uploadCalls,
		"uploads are sequential and a failure does not stop the rest")
	assert.Len(t, rec.Errors, 1)
	assert.Equal(t, 1, client.listCalls, "list reloads once after the batch")
}

func TestDownloadWritesToDownloadDir(t *testing.T) {
	client := &mockClient{content: []byte("conteúdo")}
	vm, _ := newVM(t, client)

	path, err := vm.Download(context.Background(), 1, "nota.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteúdo"), data)
	assert.False(t, vm.RowBusy(1), "row busy flag clears after the action")
}

func TestViewWritesTempFile(t *testing.T) {
	client := &mockClient{content: []byte("x")}
	vm, _ := newVM(t, client)

	path, err := vm.View(context.Background(), 1, "nota.pdf")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDeleteIsConfirmGated(t *testing.T) {
	client := &mockClient{files: []domain.StoredFile{{ID: 5, Nome: "doc.pdf"}}}
	vm, rec := newVM(t, client)
	vm.Load(context.Background())

	require.NoError(t, vm.ConfirmDelete(context.Background()))
	assert.Empty(t, client.deleteCalls, "nothing deletes without a pending confirmation")

	vm.RequestDelete(5)
	require.NotNil(t, vm.PendingDelete())
	vm.CancelDelete()
	assert.Nil(t, vm.PendingDelete())
	assert.Empty(t, client.deleteCalls)

	vm.RequestDelete(5)
	require.NoError(t, vm.ConfirmDelete(context.Background()))
	assert.Equal(t, []int64{5}, client.deleteCalls)
	assert.Equal(t, []string{"Arquivo excluído com sucesso!"}, rec.Successes)
}

func TestLoadFailureNotifies(t *testing.T) {
	vm, rec := newVM(t, &mockClient{listErr: errors.New("boom")})
	vm.Load(context.Background())
	assert.Empty(t, vm.Files())
	assert.Len(t, rec.Errors, 1)
}

func TestSaveDownloadStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	sink := NewLocalSink(dir, zap.NewNop())

	path, err := sink.SaveDownload("../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	assert.Contains(t, path, dir)
	assert.NotContains(t, path, "..")
}
