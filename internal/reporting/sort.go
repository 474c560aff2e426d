package reporting

import (
	"sort"
	"strings"

	"github.com/compele/reservas/internal/domain"
)

// Column identifies a sortable report column.
type Column string

const (
	ColumnCodigo      Column = "codigoReserva"
	ColumnSolicitante Column = "usuarioSolicitanteNome"
	ColumnCidade      Column = "cidade"
	ColumnDataInicio  Column = "dataInicio"
	ColumnDataFim     Column = "dataFim"
	ColumnDataCriacao Column = "dataCriacao"
	ColumnValor       Column = "valorImovel"
	ColumnStatus      Column = "status"
)

// Sort holds the active sort column and direction.
type Sort struct {
	Column Column
	Desc   bool
}

// Toggle applies a header click: the same column flips direction, a new
// column starts ascending.
func (s *Sort) Toggle(col Column) {
	if s.Column == col {
		s.Desc = !s.Desc
		return
	}
	s.Column = col
	s.Desc = false
}

// Apply sorts the slice in place by the active column. Sorting twice with
// the same settings leaves the order unchanged.
func (s Sort) Apply(items []domain.Reservation) {
	if s.Column == "" {
		return
	}
	less := lessFunc(s.Column)
	sort.SliceStable(items, func(i, j int) bool {
		if s.Desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFunc(col Column) func(a, b domain.Reservation) bool {
	switch col {
	case ColumnCodigo:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.CodigoReserva) < strings.ToLower(b.CodigoReserva)
		}
	case ColumnSolicitante:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.UsuarioSolicitanteNome) < strings.ToLower(b.UsuarioSolicitanteNome)
		}
	case ColumnCidade:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.Cidade) < strings.ToLower(b.Cidade)
		}
	case ColumnDataInicio:
		return func(a, b domain.Reservation) bool { return a.DataInicio.Before(b.DataInicio) }
	case ColumnDataFim:
		return func(a, b domain.Reservation) bool { return a.DataFim.Before(b.DataFim) }
	case ColumnDataCriacao:
		return func(a, b domain.Reservation) bool { return a.DataCriacao.Before(b.DataCriacao) }
	case ColumnValor:
		return func(a, b domain.Reservation) bool { return a.ValorImovel < b.ValorImovel }
	case ColumnStatus:
		return func(a, b domain.Reservation) bool {
			return strings.ToLower(a.Status) < strings.ToLower(b.Status)
		}
	default:
		return func(a, b domain.Reservation) bool { return a.ID < b.ID }
	}
}
