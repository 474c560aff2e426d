// Package reservation implements the lodging request form: a variable-length
// traveler list plus trip metadata, validated locally and submitted to the
// reservation API.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/compele/reservas/internal/api"
	"github.com/compele/reservas/internal/domain"
	"github.com/compele/reservas/internal/money"
	"github.com/compele/reservas/internal/notify"
)

// ErrLastTraveler rejects removals that would empty the traveler list.
var ErrLastTraveler = errors.New("a reserva precisa de pelo menos um colaborador")

// confirmationSeconds is the auto-navigation countdown after a successful
// submission.
const confirmationSeconds = 10

// Traveler is one form-local traveler entry, validated before submission.
type Traveler struct {
	Nome  string `validate:"required"`
	Email string `validate:"required,email"`
}

// Client is the slice of the API client the form needs.
type Client interface {
	CreateReservation(ctx context.Context, req domain.CreateReservationRequest) error
}

// Form holds the reservation request state. Zero values mean "not filled";
// ValorImovel carries the masked currency text and is only parsed to a
// decimal at submission time.
type Form struct {
	DataInicio        string
	DataFim           string
	Cidade            string
	CentroDeCusto     string
	ValorImovel       string
	LinkImovel        string
	NomeAnfitriao     string
	TelefoneAnfitriao string
	Motivo            string
	TipoReserva       int
	Travelers         []Traveler

	client     Client
	notifier   notify.Notifier
	logger     *zap.Logger
	validate   *validator.Validate
	submitting bool
	confirming *Countdown
}

// NewForm creates a form with today's start date and a single empty traveler
// entry, matching the initial render of the original view.
func NewForm(client Client, notifier notify.Notifier, logger *zap.Logger) *Form {
	f := &Form{
		client:   client,
		notifier: notifier,
		logger:   logger,
		validate: validator.New(),
	}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.DataInicio = time.Now().Format("2006-01-02")
	f.DataFim = ""
	f.Cidade = ""
	f.CentroDeCusto = ""
	f.ValorImovel = ""
	f.LinkImovel = ""
	f.NomeAnfitriao = ""
	f.TelefoneAnfitriao = ""
	f.Motivo = ""
	f.TipoReserva = domain.TipoNova
	f.Travelers = []Traveler{{}}
}

// AddTraveler appends an empty traveler entry. There is no upper bound.
func (f *Form) AddTraveler() {
	f.Travelers = append(f.Travelers, Traveler{})
}

// RemoveTraveler removes the entry at index, preserving the order of the
// remainder. Removing the last remaining entry is rejected.
func (f *Form) RemoveTraveler(index int) error {
	if len(f.Travelers) <= 1 {
		return ErrLastTraveler
	}
	if index < 0 || index >= len(f.Travelers) {
		return fmt.Errorf("traveler index %d out of range", index)
	}
	f.Travelers = append(f.Travelers[:index], f.Travelers[index+1:]...)
	return nil
}

// SetValorImovel applies the currency mask to raw input, the per-keystroke
// display transform of the original money field.
func (f *Form) SetValorImovel(raw string) {
	f.ValorImovel = money.MaskDigits(raw)
}

// Validate checks the form and returns the first violation found: traveler
// entries in order (non-blank name, RFC-shaped email), then the required
// trip fields. A nil return means the form may be submitted.
func (f *Form) Validate() error {
	for i, t := range f.Travelers {
		if err := f.validate.Struct(t); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				switch {
				case verrs[0].Field() == "Nome":
					return fmt.Errorf("informe o nome do colaborador %d", i+1)
				case verrs[0].Tag() == "required":
					return fmt.Errorf("informe o e-mail do colaborador %d", i+1)
				default:
					return fmt.Errorf("e-mail inválido para o colaborador %d", i+1)
				}
			}
			return err
		}
	}

	required := []struct {
		value string
		msg   string
	}{
		{f.DataInicio, "informe a data de início"},
		{f.DataFim, "informe a data de fim"},
		{f.Cidade, "informe a cidade"},
		{f.CentroDeCusto, "informe o centro de custo"},
		{f.ValorImovel, "informe o valor do imóvel"},
		{f.LinkImovel, "informe o link do imóvel"},
	}
	for _, field := range required {
		if field.value == "" {
			return errors.New(field.msg)
		}
	}
	return nil
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// Confirming returns the active post-submission countdown, nil when none.
func (f *Form) Confirming() *Countdown {
	return f.confirming
}

// Submit validates and sends the creation request. Validation failures are
// notified and stop before any network call. On success a confirmation
// countdown starts; on failure the server's message (or a generic fallback)
// is notified and the form state stays intact for correction.
func (f *Form) Submit(ctx context.Context) error {
	if f.submitting {
		return nil
	}
	if err := f.Validate(); err != nil {
		f.notifier.Error(err.Error())
		return err
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	req := domain.CreateReservationRequest{
		DataInicio:        f.DataInicio,
		DataFim:           f.DataFim,
		Cidade:            f.Cidade,
		CentroDeCusto:     f.CentroDeCusto,
		ValorImovel:       money.ParseBRLOrZero(f.ValorImovel),
		LinkImovel:        f.LinkImovel,
		NomeAnfitriao:     f.NomeAnfitriao,
		TelefoneAnfitriao: f.TelefoneAnfitriao,
		Motivo:            f.Motivo,
		TipoReserva:       f.TipoReserva,
		QuantidadePessoas: len(f.Travelers),
		Colaboradores:     f.travelerEntries(),
	}

	if err := f.client.CreateReservation(ctx, req); err != nil {
		f.logger.Warn("Reservation submission failed", zap.Error(err))
		f.notifier.Error(api.Message(err, "Erro ao solicitar reserva"))
		return err
	}

	f.logger.Info("Reservation submitted",
		zap.Int("travelers", len(req.Colaboradores)),
		zap.String("cidade", req.Cidade))
	f.notifier.Success("Reserva solicitada com sucesso!")
	f.confirming = NewCountdown(confirmationSeconds)
	return nil
}

func (f *Form) travelerEntries() []domain.Traveler {
	out := make([]domain.Traveler, 0, len(f.Travelers))
	for _, t := range f.Travelers {
		out = append(out, domain.Traveler{Nome: t.Nome, Email: t.Email})
	}
	return out
}

// ConfirmNavigation answers the confirmation prompt with "yes" (or the
// countdown hitting zero): the countdown stops and navigate runs.
func (f *Form) ConfirmNavigation(navigate func()) {
	if f.confirming != nil {
		f.confirming.Stop()
		f.confirming = nil
	}
	if navigate != nil {
		navigate()
	}
}

// CancelNavigation answers "no": the countdown stops and the form resets for
// a fresh request.
func (f *Form) CancelNavigation() {
	if f.confirming != nil {
		f.confirming.Stop()
		f.confirming = nil
	}
	f.reset()
}
