// Package files implements the general file module (notas) and the local
// handling of fetched binaries: the browser's transient object URLs become
// temp files for "view" and files in the download directory for "save as".
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Sink materializes fetched binary content on the local filesystem.
type Sink interface {
	// SaveDownload writes content under the configured download directory
	// and returns the resulting path (the save-as action).
	SaveDownload(name string, content []byte) (string, error)

	// SaveTemp writes content to a transient temp file and returns its path
	// (the open-in-new-tab action). Callers may remove it when done.
	SaveTemp(name string, content []byte) (string, error)
}

// LocalSink implements Sink on the local filesystem.
type LocalSink struct {
	downloadDir string
	logger      *zap.Logger
}

// NewLocalSink creates a sink writing downloads under downloadDir.
func NewLocalSink(downloadDir string, logger *zap.Logger) *LocalSink {
	return &LocalSink{downloadDir: downloadDir, logger: logger}
}

// SaveDownload implements Sink.
func (s *LocalSink) SaveDownload(name string, content []byte) (string, error) {
	// Base strips any path components a hostile server name could carry.
	safeName := filepath.Base(name)
	if err := os.MkdirAll(s.downloadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	fullPath := filepath.Join(s.downloadDir, safeName)
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		s.logger.Error("Failed to write download",
			zap.String("path", fullPath),
			zap.Error(err))
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debug("Download saved",
		zap.String("path", fullPath),
		zap.Int("size", len(content)))
	return fullPath, nil
}

// SaveTemp implements Sink.
func (s *LocalSink) SaveTemp(name string, content []byte) (string, error) {
	ext := filepath.Ext(filepath.Base(name))
	f, err := os.CreateTemp("", "reservas-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Name(), nil
}
