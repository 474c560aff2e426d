package dashboard

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/notify"
)

// savingsThreshold is the minimum relative gap between the nominal and the
// realized total before the savings highlight renders. Anything closer is
// noise, not savings.
const savingsThreshold = 0.02

// Client is the slice of the API client the dashboard needs.
type Client interface {
	DashboardSummary(ctx context.Context, query url.Values) (*domain.DashboardSummary, error)
}

// Filter holds the dashboard criteria. Changing any criterion refetches the
// whole summary; there is no local aggregation.
type Filter struct {
	Period              Period
	Colaborador         string
	CentroDeCusto       string
	Cidade              string
	Entidade            string
	FiltrarValorSemTaxa bool
}

// Query serializes the filter. The period resolves into concrete date
// bounds at call time so "DIA" always means the caller's today.
func (f Filter) Query(now time.Time) url.Values {
	q := url.Values{}
	start, end := f.Period.DateRange(now)
	if start != "" {
		q.Set("dataInicio", start)
	}
	if end != "" && f.Period != PeriodTodos {
		q.Set("dataFim", end)
	}
	if f.Colaborador != "" {
		q.Set("colaborador", f.Colaborador)
	}
	if f.CentroDeCusto != "" {
		q.Set("centroDeCusto", f.CentroDeCusto)
	}
	if f.Cidade != "" {
		q.Set("cidade", f.Cidade)
	}
	if f.Entidade != "" {
		q.Set("entidade", f.Entidade)
	}
	if f.FiltrarValorSemTaxa {
		q.Set("filtrarValorSemTaxa", strconv.FormatBool(true))
	}
	return q
}

// ViewModel drives the dashboard screen.
type ViewModel struct {
	client   Client
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time

	filter  Filter
	summary *domain.DashboardSummary
	loading bool
}

func NewViewModel(client Client, notifier notify.Notifier, logger *zap.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		filter:   Filter{Period: PeriodMes},
	}
}

// Filter returns the active criteria.
func (vm *ViewModel) Filter() Filter { return vm.filter }

// SetFilter replaces every criterion at once without fetching; the per-field
// setters below are the interactive path and refetch on each change.
func (vm *ViewModel) SetFilter(f Filter) {
	if f.Period == "" {
		f.Period = PeriodMes
	}
	vm.filter = f
}

// Summary returns the last loaded aggregation, nil before the first load.
func (vm *ViewModel) Summary() *domain.DashboardSummary { return vm.summary }

// Loading reports whether a fetch is in flight.
func (vm *ViewModel) Loading() bool { return vm.loading }

// Load fetches the summary for the active filter.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.loading = true
	defer func() { vm.loading = false }()

	summary, err := vm.client.DashboardSummary(ctx, vm.filter.Query(vm.now()))
	if err != nil {
		vm.logger.Warn("Failed to load dashboard", zap.Error(err))
		vm.notifier.Error(api.Message(err, "Erro ao carregar o dashboard"))
		return err
	}
	vm.summary = summary
	return nil
}

// SetPeriod changes the quick period and refetches.
func (vm *ViewModel) SetPeriod(ctx context.Context, p Period) error {
	vm.filter.Period = p
	return vm.Load(ctx)
}

// SetColaborador changes the collaborator criterion and refetches.
func (vm *ViewModel) SetColaborador(ctx context.Context, colaborador string) error {
	vm.filter.Colaborador = colaborador
	return vm.Load(ctx)
}

// SetCentroDeCusto changes the cost center criterion and refetches.
func (vm *ViewModel) SetCentroDeCusto(ctx context.Context, centro string) error {
	vm.filter.CentroDeCusto = centro
	return vm.Load(ctx)
}

// SetCidade changes the city criterion and refetches.
func (vm *ViewModel) SetCidade(ctx context.Context, cidade string) error {
	vm.filter.Cidade = cidade
	return vm.Load(ctx)
}

// SetEntidade changes the entity criterion and refetches.
func (vm *ViewModel) SetEntidade(ctx context.Context, entidade string) error {
	vm.filter.Entidade = entidade
	return vm.Load(ctx)
}

// SetFiltrarValorSemTaxa toggles fee exclusion and refetches.
func (vm *ViewModel) SetFiltrarValorSemTaxa(ctx context.Context, on bool) error {
	vm.filter.FiltrarValorSemTaxa = on
	return vm.Load(ctx)
}

// SavingsPercent returns the realized savings against the nominal total
// and whether the highlight should render at all. The highlight only shows
// when the realized total undercuts the nominal one by more than the
// threshold.
func (vm *ViewModel) SavingsPercent() (percent float64, show bool) {
	if vm.summary == nil || vm.summary.ValorNominal <= 0 {
		return 0, false
	}
	nominal := vm.summary.ValorNominal
	realized := vm.summary.ValorRealizado
	if realized >= nominal {
		return 0, false
	}
	percent = (nominal - realized) / nominal
	if percent <= savingsThreshold {
		return 0, false
	}
	return percent * 100, true
}
