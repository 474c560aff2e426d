package api

import (
	"context"
	"net/url"

	"github.com/compele/reservas/internal/domain"
)

// DashboardSummary loads the aggregated dashboard figures for the given
// filter query.
func (c *Client) DashboardSummary(ctx context.Context, query url.Values) (*domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	if err := c.getJSON(ctx, "/api/reservas/dashboard", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
