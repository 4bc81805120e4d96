// SPDX-License-Identifier: MPL-2.0

// Package gateway defines the boundaries through which the kernel reaches
// the outside world: identity generation, wall-clock time and logging. The
// interfaces keep the value packages pure; the default implementations in
// this package are the only place where time, entropy and I/O enter.
package gateway

import (
	"github.com/attestify/kernel/pkg/errdefs"
	"github.com/attestify/kernel/pkg/types"
	"github.com/attestify/kernel/pkg/ulid"
)

// Identity provides unique ULIDs to use as identities for persistable
// entities.
type Identity interface {
	// Generate returns a new, unique ULID.
	Generate() (ulid.ULID, error)
}

// Clock provides the current UTC time.
type Clock interface {
	// Now returns the current time as a UTCTimestamp.
	Now() (types.UTCTimestamp, error)
}

// Logger is the logging boundary consumed by kernel callers. Info and Warn
// accept an optional error that provides context to the message; Error logs
// a classified error with optional additional context.
type Logger interface {
	Debug(msg string)
	Info(msg string, err error)
	Warn(msg string, err error)
	Error(err errdefs.Error, context string)
}
