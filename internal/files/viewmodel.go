package files

import (
	"context"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/notify"
)

// Client is the slice of the API client the file module needs.
type Client interface {
	ListFiles(ctx context.Context) ([]domain.StoredFile, error)
	DownloadFile(ctx context.Context, id int64) ([]byte, error)
	UploadFile(ctx context.Context, filename string, content []byte) error
	DeleteFile(ctx context.Context, id int64) error
}

// Upload is one selected file to send.
type Upload struct {
	Name    string
	Content []byte
}

// UploadResult is the per-file outcome of a multi-file upload. A later
// file's failure never rolls back earlier successes.
type UploadResult struct {
	Name string
	Err  error
}

// ViewModel drives the file listing view: list, sequential upload, download,
// view and confirmed delete.
type ViewModel struct {
	client   Client
	sink     Sink
	notifier notify.Notifier
	logger   *zap.Logger

	files         []domain.StoredFile
	loading       bool
	rowBusy       map[int64]bool
	pendingDelete *domain.StoredFile
}

// NewViewModel creates the file module view-model.
func NewViewModel(client Client, sink Sink, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		rowBusy:  make(map[int64]bool),
	}
}

// Files returns the loaded entries.
func (vm *ViewModel) Files() []domain.StoredFile { return vm.files }

// Loading reports whether the list fetch is in flight.
func (vm *ViewModel) Loading() bool { return vm.loading }

// RowBusy reports whether the given row has an action in flight; only that
// row's actions are disabled.
func (vm *ViewModel) RowBusy(id int64) bool { return vm.rowBusy[id] }

// Load fetches the file list, replacing the in-memory entries.
func (vm *ViewModel) Load(ctx context.Context) {
	vm.loading = true
	defer func() { vm.loading = false }()

	list, err := vm.client.ListFiles(ctx)
	if err != nil {
		vm.logger.Warn("Failed to load files", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao carregar arquivos"))
		return
	}
	vm.files = list
}

// UploadAll sends the selected files one request at a time. Each file gets
// its own result; a failure mid-sequence leaves earlier uploads in place and
// the loop keeps going. The list reloads afterwards.
func (vm *ViewModel) UploadAll(ctx context.Context, uploads []Upload) []UploadResult {
	results := make([]UploadResult, 0, len(uploads))
	for _, u := range uploads {
		err := vm.client.UploadFile(ctx, u.Name, u.Content)
		if err != nil {
			vm.logger.Warn("File upload failed",
				zap.String("name", u.Name),
				zap.Error(err))
			vm.notifier.Error(api.Message(err, "Erro ao enviar o arquivo "+u.Name))
		}
		results = append(results, UploadResult{Name: u.Name, Err: err})
	}

	vm.Load(ctx)
	return results
}

// Download fetches a file and saves it into the download directory,
// returning the local path.
func (vm *ViewModel) Download(ctx context.Context, id int64, name string) (string, error) {
	vm.rowBusy[id] = true
	defer delete(vm.rowBusy, id)

	content, err := vm.client.DownloadFile(ctx, id)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao fazer download"))
		return "", err
	}
	return vm.sink.SaveDownload(name, content)
}

// View fetches a file into a transient temp file for opening, returning the
// local path.
func (vm *ViewModel) View(ctx context.Context, id int64, name string) (string, error) {
	vm.rowBusy[id] = true
	defer delete(vm.rowBusy, id)

	content, err := vm.client.DownloadFile(ctx, id)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao visualizar arquivo"))
		return "", err
	}
	return vm.sink.SaveTemp(name, content)
}

// RequestDelete opens the delete confirmation for the given entry.
func (vm *ViewModel) RequestDelete(id int64) {
	for i := range vm.files {
		if vm.files[i].ID == id {
			vm.pendingDelete = &vm.files[i]
			return
		}
	}
}

// PendingDelete returns the entry awaiting delete confirmation, nil if none.
func (vm *ViewModel) PendingDelete() *domain.StoredFile { return vm.pendingDelete }

// CancelDelete dismisses the confirmation.
func (vm *ViewModel) CancelDelete() { vm.pendingDelete = nil }

// ConfirmDelete runs the destructive call after explicit confirmation and
// reloads the list.
func (vm *ViewModel) ConfirmDelete(ctx context.Context) error {
	if vm.pendingDelete == nil {
		return nil
	}
	target := *vm.pendingDelete

	vm.rowBusy[target.ID] = true
	defer delete(vm.rowBusy, target.ID)

	if err := vm.client.DeleteFile(ctx, target.ID); err != nil {
		vm.logger.Warn("File delete failed",
			zap.Int64("id", target.ID),
			zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao excluir arquivo"))
		return err
	}

	vm.pendingDelete = nil
	vm.Load(ctx)
	vm.notifier.Success("Arquivo excluído com sucesso!")
	return nil
}
