package ledger

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/money"
	"github.com/compele/reservas/internal/notify"
	"github.com/compele/reservas/internal/session"
)

// Client is the slice of the API client the statement needs.
type Client interface {
	Statement(ctx context.Context) ([]domain.LedgerEntry, error)
	CreateOperation(ctx context.Context, req domain.CreateOperationRequest) error
	DeleteOperation(ctx context.Context, id int64) error
}

// Row pairs a statement entry with the balance after it.
type Row struct {
	Entry   domain.LedgerEntry
	Balance float64
}

// ViewModel drives the account statement screen. Manual credit and debit
// operations are an admin feature; everyone else gets a read-only view.
type ViewModel struct {
	client   Client
	viewer   *session.Profile
	notifier notify.Notifier
	logger   *zap.Logger

	rows          []Row
	loading       bool
	pendingDelete *domain.LedgerEntry
}

func NewViewModel(client Client, viewer *session.Profile, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		viewer:   viewer,
		notifier: notifier,
		logger:   logger,
	}
}

// Rows returns the statement, newest first, each row carrying the balance
// up to and including it.
func (vm *ViewModel) Rows() []Row { return vm.rows }

// Loading reports whether a statement fetch is in flight.
func (vm *ViewModel) Loading() bool { return vm.loading }

// Balance returns the current total, zero when the statement is empty.
func (vm *ViewModel) Balance() float64 {
	if len(vm.rows) == 0 {
		return 0
	}
	return vm.rows[0].Balance
}

// CanOperate reports whether manual operations render.
func (vm *ViewModel) CanOperate() bool { return vm.viewer.IsAdmin() }

// Load fetches the statement and computes running balances.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.loading = true
	defer func() { vm.loading = false }()

	entries, err := vm.client.Statement(ctx)
	if err != nil {
		vm.logger.Warn("Failed to load statement", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao carregar o extrato"))
		return err
	}

	vm.rows = buildRows(entries)
	return nil
}

// buildRows orders entries oldest first to accumulate the balance, then
// flips to the newest-first display order.
func buildRows(entries []domain.LedgerEntry) []Row {
	sorted := make([]domain.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DataCriacao.Before(sorted[j].DataCriacao)
	})

	rows := make([]Row, len(sorted))
	balance := 0.0
	for i, entry := range sorted {
		balance += entry.Signed()
		rows[i] = Row{Entry: entry, Balance: balance}
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// CreateOperation registers a manual credit or debit. The value arrives as
// masked currency text straight from the form field.
func (vm *ViewModel) CreateOperation(ctx context.Context, operacao int, maskedValue, codigoReserva string) error {
	if !vm.CanOperate() {
		vm.notifier.Error("Apenas administradores podem lançar operações")
		return nil
	}

	value := money.ParseBRLOrZero(maskedValue)
	if value <= 0 {
		vm.notifier.Error("Informe um valor maior que zero")
		return nil
	}
	if strings.TrimSpace(codigoReserva) == "" {
		vm.notifier.Error("Informe o código da reserva")
		return nil
	}

	req := domain.CreateOperationRequest{
		Operacao:      operacao,
		ValorOperacao: value,
		CodigoReserva: codigoReserva,
	}
	if err := vm.client.CreateOperation(ctx, req); err != nil {
		vm.logger.Warn("Failed to create operation", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao lançar operação"))
		return err
	}

	vm.notifier.Success("Operação lançada com sucesso!")
	return vm.Load(ctx)
}

// RequestDelete opens the delete confirmation for one entry.
func (vm *ViewModel) RequestDelete(id int64) {
	for i := range vm.rows {
		if vm.rows[i].Entry.ID == id {
			vm.pendingDelete = &vm.rows[i].Entry
			return
		}
	}
}

// PendingDelete returns the entry awaiting confirmation, nil if none.
func (vm *ViewModel) PendingDelete() *domain.LedgerEntry { return vm.pendingDelete }

// CancelDelete dismisses the confirmation.
func (vm *ViewModel) CancelDelete() { vm.pendingDelete = nil }

// ConfirmDelete removes the entry after explicit confirmation.
func (vm *ViewModel) ConfirmDelete(ctx context.Context) error {
	if vm.pendingDelete == nil {
		return nil
	}
	if !vm.CanOperate() {
		vm.notifier.Error("Apenas administradores podem excluir operações")
		return nil
	}
	target := vm.pendingDelete.ID

	if err := vm.client.DeleteOperation(ctx, target); err != nil {
		vm.logger.Warn("Failed to delete operation",
			zap.Int64("id", target),
			zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao excluir operação"))
		return err
	}

	vm.pendingDelete = nil
	vm.notifier.Success("Operação excluída com sucesso!")
	return vm.Load(ctx)
}
