// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"bytes"
	"errors"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/attestify/kernel/pkg/errdefs"
)

func newBufferedLogger() (*CharmLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := charmlog.New(&buf)
	l.SetLevel(charmlog.DebugLevel)
	return NewCharmLogger(l), &buf
}

func TestCharmLoggerError(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger()
	logger.Error(errdefs.ForSystem(errdefs.GatewayError, "the gateway failed"), "while minting an identity")

	out := buf.String()
	assert.Contains(t, out, "the gateway failed")
	assert.Contains(t, out, "audience=system")
	assert.Contains(t, out, "kind=gateway_error")
	assert.Contains(t, out, "while minting an identity")
}

func TestCharmLoggerOptionalError(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger()

	logger.Info("identity minted", nil)
	assert.NotContains(t, buf.String(), "error=")

	buf.Reset()
	logger.Warn("falling back to a fresh timestamp", errors.New("random portion exhausted"))
	out := buf.String()
	assert.Contains(t, out, "falling back to a fresh timestamp")
	assert.Contains(t, out, "random portion exhausted")
}

func TestCharmLoggerDebug(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger()
	logger.Debug("decoding identifier")
	assert.Contains(t, buf.String(), "decoding identifier")
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	t.Parallel()

	var l Logger = NopLogger{}
	l.Debug("ignored")
	l.Info("ignored", nil)
	l.Warn("ignored", nil)
	l.Error(errdefs.ForUser(errdefs.InvalidInput, "ignored"), "")
}
