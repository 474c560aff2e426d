package queue

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/notify"
)

// Client is the slice of the API client the pending queue needs.
type Client interface {
	MyPendings(ctx context.Context) ([]domain.Reservation, error)
	Decide(ctx context.Context, reservationID int64, approve bool, justification string) error
}

// ViewModel drives the approver's pending reservations list. Decisions made
// here remove the row optimistically instead of refetching the whole list.
type ViewModel struct {
	client   Client
	notifier notify.Notifier
	logger   *zap.Logger

	items   []domain.Reservation
	loading bool
	rowBusy map[int64]bool
}

func NewViewModel(client Client, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		notifier: notifier,
		logger:   logger,
		rowBusy:  make(map[int64]bool),
	}
}

// Items returns the current pending list.
func (vm *ViewModel) Items() []domain.Reservation { return vm.items }

// Loading reports whether a list fetch is in flight.
func (vm *ViewModel) Loading() bool { return vm.loading }

// RowBusy reports whether a decision for the given reservation is in flight.
func (vm *ViewModel) RowBusy(id int64) bool { return vm.rowBusy[id] }

// Load fetches the reservations awaiting the viewer's decision.
func (vm *ViewModel) Load(ctx context.Context) {
	vm.loading = true
	defer func() { vm.loading = false }()

	items, err := vm.client.MyPendings(ctx)
	if err != nil {
		vm.logger.Warn("Failed to load pending reservations", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao carregar pendências"))
		return
	}
	vm.items = items
}

// Refresh is the explicit reload action; it is the only way the list grows
// back after decisions.
func (vm *ViewModel) Refresh(ctx context.Context) { vm.Load(ctx) }

// Decide sends a decision for one row. Rejections require a justification;
// a blank one is refused locally without any request. On success the row is
// removed from the list in place.
func (vm *ViewModel) Decide(ctx context.Context, id int64, approve bool, justification string) error {
	if !approve && strings.TrimSpace(justification) == "" {
		vm.notifier.Error("Informe uma observação para reprovar a reserva")
		return nil
	}

	vm.rowBusy[id] = true
	defer delete(vm.rowBusy, id)

	if err := vm.client.Decide(ctx, id, approve, justification); err != nil {
		vm.logger.Warn("Decision failed",
			zap.Int64("id", id),
			zap.Bool("approve", approve),
			zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao enviar decisão"))
		return err
	}

	vm.remove(id)
	if approve {
		vm.notifier.Success("Reserva aprovada!")
	} else {
		vm.notifier.Success("Reserva reprovada!")
	}
	return nil
}

func (vm *ViewModel) remove(id int64) {
	for i := range vm.items {
		if vm.items[i].ID == id {
			vm.items = append(vm.items[:i], vm.items[i+1:]...)
			return
		}
	}
}
