package reporting

import (
	"net/url"
	"strconv"

	"github.com/compele/reservas/internal/domain"
)

// Filter holds the search criteria of the "my requests" report. Dates are
// kept pre-serialized as YYYY-MM-DD strings because that is how the form
// fields hold them; a zero status means every status.
type Filter struct {
	DataCriacaoInicio string
	DataCriacaoFim    string
	DataInicio        string
	DataFim           string
	Colaborador       string
	Cidade            string
	CentroDeCusto     string
	Status            domain.Status
}

// Query serializes the filter, omitting every empty criterion so the server
// does not receive blank parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("dataCriacaoInicio", f.DataCriacaoInicio)
	set("dataCriacaoFim", f.DataCriacaoFim)
	set("dataInicio", f.DataInicio)
	set("dataFim", f.DataFim)
	set("colaborador", f.Colaborador)
	set("cidade", f.Cidade)
	set("centroDeCusto", f.CentroDeCusto)
	if f.Status != 0 {
		q.Set("statusId", strconv.Itoa(int(f.Status)))
	}
	return q
}
