package domain

// GroupCount is one slice of a grouped count breakdown (per status, per
// month, ...).
type GroupCount struct {
	Label      string `json:"label"`
	Quantidade int    `json:"quantidade"`
}

// GroupValue is one bar of a grouped money breakdown (per city, comparative
// figures). Cor is an optional server-chosen bar color.
type GroupValue struct {
	Label string  `json:"label"`
	Valor float64 `json:"valor"`
	Cor   string  `json:"cor,omitempty"`
}

// CityHotelRate is the average daily hotel rate the server benchmarks a city
// against.
type CityHotelRate struct {
	Cidade               string  `json:"cidade"`
	ValorHotelariaDiario float64 `json:"valorHotelariaDiario"`
}

// DashboardSummary is the pre-aggregated summary returned by
// GET /api/reservas/dashboard. The client renders it as-is; the only
// client-side derivations are locale formatting and the savings percentage.
type DashboardSummary struct {
	Quantidade               int             `json:"quantidade"`
	QuantidadeRecibos        int             `json:"quantidadeRecibos"`
	ValorTotal               float64         `json:"valorTotal"`
	ValorMedioPorDiaria      float64         `json:"valorMedioPorDiaria"`
	ValorEconomiaEstimada    float64         `json:"valorEconomiaEstimada"`
	ValorNominal             float64         `json:"valorNominal"`
	ValorRealizado           float64         `json:"valorRealizado"`
	MediaHotelariaPorCidade  []CityHotelRate `json:"mediaHotelariaPorCidade"`
	RecibosAgrupadoPorStatus []GroupCount    `json:"recibosAgrupadoPorStatus"`
	AgrupadoPorStatus        []GroupValue    `json:"agrupadoPorStatus"`
	AgrupadoPorCidade        []GroupValue    `json:"agrupadoPorCidade"`
	AgrupadoPorMes           []GroupValue    `json:"agrupadoPorMes"`
	ComparativoHotelaria     []GroupValue    `json:"comparativoHotelaria"`
}
