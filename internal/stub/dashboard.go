package stub

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/compele/reservas/internal/domain"
)

// dashboard aggregates the in-memory reservations into the summary shape
// the real API computes server-side.
func (s *Server) dashboard(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	semTaxa := c.Query("filtrarValorSemTaxa") == "true"

	var selected []*domain.Reservation
	for _, res := range s.store.reservations {
		if v := c.Query("cidade"); v != "" && v != res.Cidade {
			continue
		}
		if v := c.Query("centroDeCusto"); v != "" && v != res.CentroDeCusto {
			continue
		}
		if v := c.Query("colaborador"); v != "" && !reservationHasTraveler(res, v) {
			continue
		}
		if !matchesDateRange(c.Query("dataInicio"), c.Query("dataFim"), res.DataCriacao) {
			continue
		}
		selected = append(selected, res)
	}

	summary := domain.DashboardSummary{
		AgrupadoPorStatus:        []domain.GroupValue{},
		AgrupadoPorCidade:        []domain.GroupValue{},
		AgrupadoPorMes:           []domain.GroupValue{},
		RecibosAgrupadoPorStatus: []domain.GroupCount{},
		MediaHotelariaPorCidade:  []domain.CityHotelRate{},
		ComparativoHotelaria:     []domain.GroupValue{},
	}

	byStatus := map[string]float64{}
	byCity := map[string]float64{}
	byMonth := map[string]float64{}
	receiptsByStatus := map[string]int{}

	var totalNights float64
	for _, res := range selected {
		value := res.ValorComTaxa
		if semTaxa {
			value = res.ValorImovel
		}

		summary.Quantidade++
		summary.ValorTotal += value
		summary.ValorNominal += value
		if res.ValorReal > 0 {
			summary.ValorRealizado += res.ValorReal
		} else {
			summary.ValorRealizado += value
		}

		nights := res.DataFim.Sub(res.DataInicio).Hours() / 24
		if nights > 0 {
			totalNights += nights
		}

		byStatus[res.Status] += value
		byCity[res.Cidade] += value
		byMonth[res.DataCriacao.Format("2006-01")] += value

		for _, r := range s.store.receipts {
			if r.ReservationID == res.ID {
				summary.QuantidadeRecibos++
				receiptsByStatus[res.Status]++
			}
		}
	}

	if totalNights > 0 {
		summary.ValorMedioPorDiaria = summary.ValorTotal / totalNights
	}
	if summary.ValorNominal > summary.ValorRealizado {
		summary.ValorEconomiaEstimada = summary.ValorNominal - summary.ValorRealizado
	}

	for label, value := range byStatus {
		summary.AgrupadoPorStatus = append(summary.AgrupadoPorStatus, domain.GroupValue{
			Label: label, Valor: value, Cor: domain.ColorForLabel(label).Bg,
		})
	}
	for label, value := range byCity {
		summary.AgrupadoPorCidade = append(summary.AgrupadoPorCidade, domain.GroupValue{
			Label: label, Valor: value,
		})
	}
	for label, value := range byMonth {
		summary.AgrupadoPorMes = append(summary.AgrupadoPorMes, domain.GroupValue{
			Label: label, Valor: value,
		})
	}
	for label, count := range receiptsByStatus {
		summary.RecibosAgrupadoPorStatus = append(summary.RecibosAgrupadoPorStatus, domain.GroupCount{
			Label: label, Quantidade: count,
		})
	}
	sortGroups(summary.AgrupadoPorStatus)
	sortGroups(summary.AgrupadoPorCidade)
	sortGroups(summary.AgrupadoPorMes)

	// Fixed per-city hotel baselines for the comparison chart.
	for _, rate := range []domain.CityHotelRate{
		{Cidade: "São Paulo", ValorHotelariaDiario: 420},
		{Cidade: "Rio de Janeiro", ValorHotelariaDiario: 390},
		{Cidade: "Curitiba", ValorHotelariaDiario: 280},
	} {
		summary.MediaHotelariaPorCidade = append(summary.MediaHotelariaPorCidade, rate)
		if value, ok := byCity[rate.Cidade]; ok {
			summary.ComparativoHotelaria = append(summary.ComparativoHotelaria, domain.GroupValue{
				Label: rate.Cidade, Valor: value,
			})
		}
	}

	c.JSON(http.StatusOK, summary)
}

func sortGroups(groups []domain.GroupValue) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].Label < groups[j].Label })
}
