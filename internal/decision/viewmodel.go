package decision

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/files"
	"github.com/compele/reservas/internal/notify"
	"github.com/compele/reservas/internal/session"
)

// Client is the slice of the API client the detail view needs.
type Client interface {
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	ListReceipts(ctx context.Context, reservationID int64) ([]domain.Receipt, error)
	Decide(ctx context.Context, reservationID int64, approve bool, justification string) error
	UploadReceipt(ctx context.Context, reservationID int64, filename string, content []byte) error
	DeleteReceipt(ctx context.Context, reservationID, receiptID int64) error
	DownloadFile(ctx context.Context, id int64) ([]byte, error)
}

// ViewModel drives the reservation detail view for one reservation.
type ViewModel struct {
	id       int64
	viewer   *session.Profile
	client   Client
	sink     files.Sink
	notifier notify.Notifier
	logger   *zap.Logger

	flow           *Flow
	reservation    *domain.Reservation
	receipts       []domain.Receipt
	pendingApprove bool
	justification  string
	busy           bool
	rowBusy        map[int64]bool
	pendingDelete  *domain.Receipt
}

// NewViewModel creates the detail view-model for the given reservation id.
// viewer is the session profile of the logged-in user; role gating happens
// here even though the server re-validates every decision.
func NewViewModel(id int64, viewer *session.Profile, client Client, sink files.Sink, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		id:       id,
		viewer:   viewer,
		client:   client,
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		flow:     NewFlow(),
		rowBusy:  make(map[int64]bool),
	}
}

// State exposes the current flow state.
func (vm *ViewModel) State() State { return vm.flow.State() }

// Reservation returns the loaded reservation, nil while loading or after a
// failed load.
func (vm *ViewModel) Reservation() *domain.Reservation { return vm.reservation }

// Receipts returns the loaded receipt list.
func (vm *ViewModel) Receipts() []domain.Receipt { return vm.receipts }

// Busy reports whether a decision request is in flight.
func (vm *ViewModel) Busy() bool { return vm.busy }

// RowBusy reports whether the given receipt row has an action in flight.
func (vm *ViewModel) RowBusy(receiptID int64) bool { return vm.rowBusy[receiptID] }

// Load fetches the reservation and its receipts in parallel. The two
// fetches are independent: either failure is notified on its own and does
// not block the other's result from rendering.
func (vm *ViewModel) Load(ctx context.Context) {
	var wg sync.WaitGroup
	var resErr, recErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := vm.client.GetReservation(ctx, vm.id)
		if err != nil {
			resErr = err
			return
		}
		vm.reservation = res
	}()
	go func() {
		defer wg.Done()
		receipts, err := vm.client.ListReceipts(ctx, vm.id)
		if err != nil {
			recErr = err
			return
		}
		vm.receipts = receipts
	}()
	wg.Wait()

	if resErr != nil {
		vm.logger.Warn("Failed to load reservation",
			zap.Int64("id", vm.id),
			zap.Error(resErr))
		vm.notifier.Error(api.Message(resErr, "Erro ao carregar reserva"))
	}
	if recErr != nil {
		vm.logger.Warn("Failed to load receipts",
			zap.Int64("id", vm.id),
			zap.Error(recErr))
		vm.notifier.Error(api.Message(recErr, "Erro ao carregar recibos"))
	}

	if vm.flow.CanFire(TriggerLoaded) {
		_ = vm.flow.Fire(TriggerLoaded)
	}
}

// Eligible reports whether decision actions render: the reservation must be
// Pendente and the viewer an approver or admin.
func (vm *ViewModel) Eligible() bool {
	return vm.reservation != nil &&
		vm.reservation.StatusID == domain.StatusPendente &&
		vm.viewer.IsApprover()
}

// CanManageReceipts reports whether receipt inclusion renders.
func (vm *ViewModel) CanManageReceipts() bool {
	return vm.viewer.IsApprover()
}

// OpenDecision opens the decision modal for an approval or rejection,
// clearing any previous justification text.
func (vm *ViewModel) OpenDecision(approve bool) error {
	if !vm.Eligible() {
		return ErrInvalidTransition
	}
	if err := vm.flow.Fire(TriggerOpen); err != nil {
		return err
	}
	vm.pendingApprove = approve
	vm.justification = ""
	return nil
}

// PendingApprove reports which decision the open modal carries.
func (vm *ViewModel) PendingApprove() bool { return vm.pendingApprove }

// SetJustification updates the modal's justification text.
func (vm *ViewModel) SetJustification(text string) { vm.justification = text }

// CancelDecision closes the modal without sending anything.
func (vm *ViewModel) CancelDecision() {
	_ = vm.flow.Fire(TriggerCancel)
}

// Confirm sends the pending decision. A rejection with a blank
// justification is refused locally: the modal stays open and no request
// leaves the client. After a successful decision only the single
// reservation reloads to pick up its new status.
func (vm *ViewModel) Confirm(ctx context.Context) error {
	if !vm.flow.CanFire(TriggerSubmit) {
		return ErrInvalidTransition
	}
	if !vm.pendingApprove && strings.TrimSpace(vm.justification) == "" {
		vm.notifier.Error("Informe uma observação para reprovar a reserva")
		return nil
	}

	if err := vm.flow.Fire(TriggerSubmit); err != nil {
		return err
	}
	vm.busy = true
	defer func() {
		vm.busy = false
		_ = vm.flow.Fire(TriggerSettle)
	}()

	if err := vm.client.Decide(ctx, vm.id, vm.pendingApprove, vm.justification); err != nil {
		vm.logger.Warn("Decision failed",
			zap.Int64("id", vm.id),
			zap.Bool("approve", vm.pendingApprove),
			zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao enviar decisão"))
		return err
	}

	res, err := vm.client.GetReservation(ctx, vm.id)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao recarregar reserva"))
	} else {
		vm.reservation = res
	}

	if vm.pendingApprove {
		vm.notifier.Success("Reserva aprovada!")
	} else {
		vm.notifier.Success("Reserva reprovada!")
	}
	return nil
}

// UploadReceipts sends the selected receipt files one request at a time.
// A later failure keeps earlier successful uploads (accepted behavior) and
// every file gets its own result. The receipt list reloads afterwards.
func (vm *ViewModel) UploadReceipts(ctx context.Context, uploads []files.Upload) []files.UploadResult {
	results := make([]files.UploadResult, 0, len(uploads))
	for _, u := range uploads {
		err := vm.client.UploadReceipt(ctx, vm.id, u.Name, u.Content)
		if err != nil {
			vm.logger.Warn("Receipt upload failed",
				zap.String("name", u.Name),
				zap.Error(err))
			vm.notifier.Error(api.Message(err, "Erro ao enviar o recibo "+u.Name))
		}
		results = append(results, files.UploadResult{Name: u.Name, Err: err})
	}

	vm.reloadReceipts(ctx)
	return results
}

func (vm *ViewModel) reloadReceipts(ctx context.Context) {
	receipts, err := vm.client.ListReceipts(ctx, vm.id)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao carregar recibos"))
		return
	}
	vm.receipts = receipts
}

// RequestDeleteReceipt opens the delete confirmation for one receipt.
func (vm *ViewModel) RequestDeleteReceipt(receiptID int64) {
	for i := range vm.receipts {
		if vm.receipts[i].ID == receiptID {
			vm.pendingDelete = &vm.receipts[i]
			return
		}
	}
}

// PendingDeleteReceipt returns the receipt awaiting confirmation, nil if none.
func (vm *ViewModel) PendingDeleteReceipt() *domain.Receipt { return vm.pendingDelete }

// CancelDeleteReceipt dismisses the confirmation.
func (vm *ViewModel) CancelDeleteReceipt() { vm.pendingDelete = nil }

// ConfirmDeleteReceipt runs the destructive call after explicit
// confirmation; only the affected row is disabled meanwhile.
func (vm *ViewModel) ConfirmDeleteReceipt(ctx context.Context) error {
	if vm.pendingDelete == nil {
		return nil
	}
	target := *vm.pendingDelete

	vm.rowBusy[target.ID] = true
	defer delete(vm.rowBusy, target.ID)

	if err := vm.client.DeleteReceipt(ctx, vm.id, target.ID); err != nil {
		vm.logger.Warn("Receipt delete failed",
			zap.Int64("receipt_id", target.ID),
			zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao excluir recibo"))
		return err
	}

	vm.pendingDelete = nil
	vm.reloadReceipts(ctx)
	vm.notifier.Success("Recibo excluído com sucesso!")
	return nil
}

// ViewReceipt fetches the receipt binary into a transient temp file and
// returns its path (the open-in-new-tab action).
func (vm *ViewModel) ViewReceipt(ctx context.Context, receiptID int64, name string) (string, error) {
	vm.rowBusy[receiptID] = true
	defer delete(vm.rowBusy, receiptID)

	content, err := vm.client.DownloadFile(ctx, receiptID)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao visualizar recibo"))
		return "", err
	}
	return vm.sink.SaveTemp(name, content)
}

// DownloadReceipt fetches the receipt binary into the download directory
// and returns its path (the save-as action).
func (vm *ViewModel) DownloadReceipt(ctx context.Context, receiptID int64, name string) (string, error) {
	vm.rowBusy[receiptID] = true
	defer delete(vm.rowBusy, receiptID)

	content, err := vm.client.DownloadFile(ctx, receiptID)
	if err != nil {
		vm.notifier.Error(api.Message(err, "Erro ao fazer download do recibo"))
		return "", err
	}
	return vm.sink.SaveDownload(name, content)
}
