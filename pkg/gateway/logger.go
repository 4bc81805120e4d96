// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/attestify/kernel/pkg/errdefs"
)

// CharmLogger is a Logger backed by charmbracelet/log. Classified errors are
// logged with their audience and kind as structured fields.
type CharmLogger struct {
	l *charmlog.Logger
}

// NewCharmLogger wraps an existing charmbracelet logger.
func NewCharmLogger(l *charmlog.Logger) *CharmLogger {
	return &CharmLogger{l: l}
}

// Debug logs a debug message.
func (c *CharmLogger) Debug(msg string) { c.l.Debug(msg) }

// Info logs an information message, with the error as context when present.
func (c *CharmLogger) Info(msg string, err error) {
	if err != nil {
		c.l.Info(msg, "error", err)
		return
	}
	c.l.Info(msg)
}

// Warn logs a warning message, with the error as context when present.
func (c *CharmLogger) Warn(msg string, err error) {
	if err != nil {
		c.l.Warn(msg, "error", err)
		return
	}
	c.l.Warn(msg)
}

// Error logs a classified error together with its classification fields.
func (c *CharmLogger) Error(err errdefs.Error, context string) {
	args := []any{"audience", err.Audience, "kind", err.Kind}
	if context != "" {
		args = append(args, "context", context)
	}
	c.l.Error(err.Message, args...)
}

// NopLogger discards everything. Useful as a default where no logger has
// been wired.
type NopLogger struct{}

func (NopLogger) Debug(string)                {}
func (NopLogger) Info(string, error)          {}
func (NopLogger) Warn(string, error)          {}
func (NopLogger) Error(errdefs.Error, string) {}
