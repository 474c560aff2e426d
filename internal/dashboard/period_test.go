package dashboard

import (
	"testing"
	"time"
)

func TestPeriodDateRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period Period
		start  string
		end    string
	}{
		{PeriodDia, "2024-03-15", "2024-03-15"},
		{PeriodSemana, "2024-03-08", "2024-03-15"},
		{PeriodMes, "2024-03-01", "2024-03-15"},
		{PeriodSemestre, "2023-09-15", "2024-03-15"},
		{PeriodAno, "2024-01-01", "2024-03-15"},
		{PeriodTodos, "", ""},
	}

	for _, tt := range tests {
		start, end := tt.period.DateRange(now)
		if start != tt.start || end != tt.end {
			t.Errorf("%s.DateRange() = (%q, %q), want (%q, %q)",
				tt.period, start, end, tt.start, tt.end)
		}
	}
}

func TestUnknownPeriodActsAsTodos(t *testing.T) {
	start, end := Period("QUINZENA").DateRange(time.Now())
	if start != "" || end != "" {
		t.Errorf("unknown period must not constrain dates, got (%q, %q)", start, end)
	}
}

func TestFilterQuery(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	q := Filter{Period: PeriodMes, Cidade: "Curitiba", FiltrarValorSemTaxa: true}.Query(now)
	if got := q.Get("dataInicio"); got != "2024-03-01" {
		t.Errorf("dataInicio = %q, want 2024-03-01", got)
	}
	if got := q.Get("dataFim"); got != "2024-03-15" {
		t.Errorf("dataFim = %q, want 2024-03-15", got)
	}
	if got := q.Get("cidade"); got != "Curitiba" {
		t.Errorf("cidade = %q", got)
	}
	if got := q.Get("filtrarValorSemTaxa"); got != "true" {
		t.Errorf("filtrarValorSemTaxa = %q, want true", got)
	}

	q = Filter{Period: PeriodTodos}.Query(now)
	if len(q) != 0 {
		t.Errorf("TODOS with no criteria must serialize empty, got %v", q)
	}
}
