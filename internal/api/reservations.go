package api

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/compele/reservas/internal/domain"
)

// CreateReservation submits a new lodging request.
func (c *Client) CreateReservation(ctx context.Context, req domain.CreateReservationRequest) error {
	return c.postJSON(ctx, "/api/reservas", req, nil)
}

// GetReservation loads a single reservation.
func (c *Client) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := c.getJSON(ctx, fmt.Sprintf("/api/reservas/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListReceipts loads the receipts attached to a reservation.
func (c *Client) ListReceipts(ctx context.Context, reservationID int64) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	if err := c.getJSON(ctx, fmt.Sprintf("/api/reservas/%d/recibos", reservationID), nil, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

// Decide approves or rejects a pending reservation.
func (c *Client) Decide(ctx context.Context, reservationID int64, approve bool, justification string) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/reservas/%d/decisao", reservationID), domain.DecisionRequest{
		Aprovar:    approve,
		Observacao: justification,
	}, nil)
}

// UploadReceipt attaches one receipt file to a reservation. Multi-file
// uploads issue this once per file, sequentially.
func (c *Client) UploadReceipt(ctx context.Context, reservationID int64, filename string, content []byte) error {
	return c.uploadMultipart(ctx, fmt.Sprintf("/api/reservas/%d/recibos", reservationID),
		"arquivo", filename, bytes.NewReader(content))
}

// DeleteReceipt removes a receipt from a reservation.
func (c *Client) DeleteReceipt(ctx context.Context, reservationID, receiptID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/reservas/%d/recibos/%d", reservationID, receiptID))
}

// MyRequests loads the requester's reservations matching the filter query.
func (c *Client) MyRequests(ctx context.Context, query url.Values) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.getJSON(ctx, "/api/reservas/minhas-solicitacoes", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportMyRequestsURL derives the export download link for the same filter.
// The link is opened externally; no file handling happens client-side.
func (c *Client) ExportMyRequestsURL(query url.Values) string {
	return c.URL("/api/reservas/exportar-minhas-solicitacoes", query)
}

// MyPendings loads the full pending queue for the current approver.
func (c *Client) MyPendings(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.getJSON(ctx, "/api/reservas/minhas-pendencias", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
