package dashboard

import "time"

// Period is a quick date-range preset of the dashboard filter.
type Period string

const (
	PeriodDia      Period = "DIA"
	PeriodSemana   Period = "SEMANA"
	PeriodMes      Period = "MES"
	PeriodSemestre Period = "SEMESTRE"
	PeriodAno      Period = "ANO"
	PeriodTodos    Period = "TODOS"
)

const dateLayout = "2006-01-02"

// DateRange resolves the preset into a concrete start/end pair relative to
// now. TODOS yields empty strings so both bounds are omitted from the query.
func (p Period) DateRange(now time.Time) (start, end string) {
	end = now.Format(dateLayout)
	switch p {
	case PeriodDia:
		start = end
	case PeriodSemana:
		start = now.AddDate(0, 0, -7).Format(dateLayout)
	case PeriodMes:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	case PeriodSemestre:
		start = now.AddDate(0, -6, 0).Format(dateLayout)
	case PeriodAno:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	case PeriodTodos:
		return "", ""
	default:
		return "", ""
	}
	return start, end
}
