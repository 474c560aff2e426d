// Package notify is the client's toast equivalent: view-models report
// outcome messages here instead of rendering them, so front ends (CLI, tests)
// decide presentation.
package notify

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Notifier receives transient user-facing messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Console writes notifications to a writer and mirrors them to the log.
type Console struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsole creates a console notifier.
func NewConsole(out io.Writer, logger *zap.Logger) *Console {
	return &Console{out: out, logger: logger}
}

// Success implements Notifier.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "✔ %s\n", msg)
	c.logger.Info("notification", zap.String("kind", "success"), zap.String("message", msg))
}

// Error implements Notifier.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "✘ %s\n", msg)
	c.logger.Warn("notification", zap.String("kind", "error"), zap.String("message", msg))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Successes []string
	Errors    []string
}

// Success implements Notifier.
func (r *Recorder) Success(msg string) { r.Successes = append(r.Successes, msg) }

// Error implements Notifier.
func (r *Recorder) Error(msg string) { r.Errors = append(r.Errors, msg) }
