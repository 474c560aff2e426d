package reporting

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/notify"
)

// Client is the slice of the API client the report needs.
type Client interface {
	MyRequests(ctx context.Context, query url.Values) ([]domain.Reservation, error)
	ExportMyRequestsURL(query url.Values) string
}

// ViewModel drives the "my requests" report: filterable, sortable, and
// exportable. Filtering always queries the server; sorting is local.
type ViewModel struct {
	client   Client
	notifier notify.Notifier
	logger   *zap.Logger

	filter  Filter
	sorting Sort
	items   []domain.Reservation
	loading bool
}

func NewViewModel(client Client, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Filter returns the active criteria.
func (vm *ViewModel) Filter() Filter { return vm.filter }

// SetFilter replaces the criteria without searching; Search applies them.
func (vm *ViewModel) SetFilter(f Filter) { vm.filter = f }

// Items returns the current result set in display order.
func (vm *ViewModel) Items() []domain.Reservation { return vm.items }

// Loading reports whether a search is in flight.
func (vm *ViewModel) Loading() bool { return vm.loading }

// Sorting returns the active sort.
func (vm *ViewModel) Sorting() Sort { return vm.sorting }

// Search runs the active filter against the server and re-applies the
// current sort to the fresh result set.
func (vm *ViewModel) Search(ctx context.Context) error {
	vm.loading = true
	defer func() { vm.loading = false }()

	items, err := vm.client.MyRequests(ctx, vm.filter.Query())
	if err != nil {
		vm.logger.Warn("Report search failed", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao buscar solicitações"))
		return err
	}
	vm.items = items
	vm.sorting.Apply(vm.items)
	return nil
}

// SortBy handles a column header click and reorders the loaded rows.
func (vm *ViewModel) SortBy(col Column) {
	vm.sorting.Toggle(col)
	vm.sorting.Apply(vm.items)
}

// ClearFilter resets every criterion and searches again.
func (vm *ViewModel) ClearFilter(ctx context.Context) error {
	vm.filter = Filter{}
	return vm.Search(ctx)
}

// ExportURL builds the server-side export endpoint carrying the same
// criteria the table currently shows.
func (vm *ViewModel) ExportURL() string {
	return vm.client.ExportMyRequestsURL(vm.filter.Query())
}
