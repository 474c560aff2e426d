package domain

import "sort"

// cities is the static city list offered by the reservation form.
// The remote cadastro endpoint may return a richer list; this one is the
// offline fallback shipped with the client.
var cities = []string{
	"Belém", "Belo Horizonte", "Blumenau", "Boa Vista", "Brasília", "Campinas",
	"Campo Grande", "Cascavel", "Curitiba", "Feira de Santana", "Florianópolis",
	"Fortaleza", "Goiânia", "Guarulhos", "Joinville", "Londrina", "Macapá",
	"Maceió", "Manaus", "Maringá", "Natal", "Niterói", "Osasco", "Palmas",
	"Porto Alegre", "Recife", "Ribeirão Preto", "Rio de Janeiro", "Salvador",
	"Santos", "São Bernardo do Campo", "São Gonçalo", "São José dos Campos",
	"São Luís", "São Paulo", "Sorocaba", "Teresina", "Uberlândia", "Vitória",
	"Volta Redonda",
}

// Cities returns the static city list, sorted, as a fresh copy.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	sort.Strings(out)
	return out
}
