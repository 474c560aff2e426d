package api

import "context"

// Colaborador is an employee entry from the cadastro lookups.
type Colaborador struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Colaboradores loads the employee lookup list.
func (c *Client) Colaboradores(ctx context.Context) ([]Colaborador, error) {
	var out []Colaborador
	if err := c.getJSON(ctx, "/api/cadastros/colaboradores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CentrosDeCusto loads the cost-center labels.
func (c *Client) CentrosDeCusto(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/api/cadastros/centro-de-custo", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cidades loads the city labels.
func (c *Client) Cidades(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/api/cadastros/cidades", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
