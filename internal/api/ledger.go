package api

import (
	"context"
	"fmt"

	"github.com/compele/reservas/internal/domain"
)

// Statement loads the credit/debit ledger.
func (c *Client) Statement(ctx context.Context) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	if err := c.getJSON(ctx, "/api/extrato", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOperation registers a credit or debit against a reservation code.
func (c *Client) CreateOperation(ctx context.Context, req domain.CreateOperationRequest) error {
	return c.postJSON(ctx, "/api/extrato/operacoes", req, nil)
}

// DeleteOperation removes a ledger entry.
func (c *Client) DeleteOperation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/extrato/operacao/%d", id))
}
