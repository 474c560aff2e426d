package domain

import "time"

// TipoReserva values accepted by the creation endpoint.
const (
	TipoNova      = 1
	TipoRenovacao = 2
)

// Traveler is one occupant of a reservation (colaborador).
type Traveler struct {
	Nome  string `json:"nomeColaborador"`
	Email string `json:"emailColaborador"`
}

// Reservation is a lodging request as returned by the reservation endpoints.
// Creation happens through CreateReservationRequest; the only client-driven
// mutation is the approve/reject decision. Cancelled and Completed states are
// set by the back office, never from here.
type Reservation struct {
	ID                     int64      `json:"id"`
	CodigoReserva          string     `json:"codigoReserva,omitempty"`
	UsuarioSolicitanteNome string     `json:"usuarioSolicitanteNome"`
	Colaboradores          []Traveler `json:"colaboradores"`
	Cidade                 string     `json:"cidade"`
	DataInicio             time.Time  `json:"dataInicio"`
	DataFim                time.Time  `json:"dataFim"`
	DataCriacao            time.Time  `json:"dataCriacao"`
	TipoReserva            int        `json:"tipoReserva"`
	QuantidadePessoas      int        `json:"quantidadePessoas"`
	ValorImovel            float64    `json:"valorImovel"`
	ValorComTaxa           float64    `json:"valorComTaxa"`
	ValorReal              float64    `json:"valorReal"`
	CentroDeCusto          string     `json:"centroDeCusto"`
	NomeAnfitriao          string     `json:"nomeAnfitriao"`
	TelefoneAnfitriao      string     `json:"telefoneAnfitriao"`
	LinkImovel             string     `json:"linkImovel"`
	Motivo                 string     `json:"motivo"`
	StatusID               Status     `json:"statusId"`
	Status                 string     `json:"status"`
	ObservacaoAprovador    string     `json:"observacaoAprovador,omitempty"`
	ObservacaoExecutor     string     `json:"observacaoExecutor,omitempty"`
}

// CreateReservationRequest is the payload of POST /api/reservas.
// QuantidadePessoas is always the traveler count in this form variant.
type CreateReservationRequest struct {
	DataInicio        string     `json:"dataInicio"`
	DataFim           string     `json:"dataFim"`
	Cidade            string     `json:"cidade"`
	CentroDeCusto     string     `json:"centroDeCusto"`
	ValorImovel       float64    `json:"valorImovel"`
	LinkImovel        string     `json:"linkImovel"`
	NomeAnfitriao     string     `json:"nomeAnfitriao"`
	TelefoneAnfitriao string     `json:"telefoneAnfitriao"`
	Motivo            string     `json:"motivo"`
	TipoReserva       int        `json:"tipoReserva"`
	QuantidadePessoas int        `json:"quantidadePessoas"`
	Colaboradores     []Traveler `json:"colaboradores"`
}

// DecisionRequest is the payload of POST /api/reservas/:id/decisao.
type DecisionRequest struct {
	Aprovar    bool   `json:"aprovar"`
	Observacao string `json:"observacao"`
}

// Receipt is an uploaded proof-of-expense file attached to a reservation.
type Receipt struct {
	ID          int64     `json:"id"`
	Nome        string    `json:"nome"`
	DataCriacao time.Time `json:"dataCriacao"`
}

// StoredFile is an entry of the general file module (/api/arquivos).
type StoredFile struct {
	ID          int64     `json:"id"`
	Nome        string    `json:"nome"`
	DataCriacao time.Time `json:"dataCriacao"`
}
