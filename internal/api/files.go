package api

import (
	"bytes"
	"context"
	"fmt"

	"github.com/compele/reservas/internal/domain"
)

// ListFiles loads the general file module entries.
func (c *Client) ListFiles(ctx context.Context) ([]domain.StoredFile, error) {
	var out []domain.StoredFile
	if err := c.getJSON(ctx, "/api/arquivos/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadFile fetches the binary content of a stored file.
func (c *Client) DownloadFile(ctx context.Context, id int64) ([]byte, error) {
	return c.download(ctx, fmt.Sprintf("/api/arquivos/download/%d", id))
}

// UploadFile stores one file in the general file module.
func (c *Client) UploadFile(ctx context.Context, filename string, content []byte) error {
	return c.uploadMultipart(ctx, "/api/arquivos/upload", "arquivo", filename, bytes.NewReader(content))
}

// DeleteFile removes a stored file.
func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/arquivos/%d", id))
}
