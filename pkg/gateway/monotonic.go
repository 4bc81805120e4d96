// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/attestify/kernel/pkg/errdefs"
	"github.com/attestify/kernel/pkg/ulid"
)

// MonotonicIdentity is the default Identity. ULIDs it returns are strictly
// increasing within a process: calls landing on the same millisecond (or
// after a wall-clock regression) increment the random portion of the
// previous ULID instead of drawing fresh randomness. When the 80-bit random
// portion is exhausted it waits for the clock to pass the previous
// timestamp and mints fresh.
//
// Safe for concurrent use.
type MonotonicIdentity struct {
	mu      sync.Mutex
	clock   Clock
	entropy io.Reader
	last    ulid.ULID
	hasLast bool
}

// IdentityOption configures a MonotonicIdentity.
type IdentityOption func(*MonotonicIdentity)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) IdentityOption {
	return func(g *MonotonicIdentity) { g.clock = c }
}

// WithEntropy sets the randomness source. Defaults to crypto/rand.
func WithEntropy(r io.Reader) IdentityOption {
	return func(g *MonotonicIdentity) { g.entropy = r }
}

// NewMonotonicIdentity creates a MonotonicIdentity with the given options.
func NewMonotonicIdentity(opts ...IdentityOption) *MonotonicIdentity {
	g := &MonotonicIdentity{
		clock:   SystemClock{},
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the next ULID.
func (g *MonotonicIdentity) Generate() (ulid.ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms, err := g.nowMillis()
	if err != nil {
		return ulid.Nil(), err
	}

	if g.hasLast && ms <= g.last.Time() {
		if next, ok := g.last.Increment(); ok {
			g.last = next
			return next, nil
		}
		// Random portion exhausted within this millisecond; wait for the
		// clock to move past the previous timestamp.
		for ms <= g.last.Time() {
			if ms, err = g.nowMillis(); err != nil {
				return ulid.Nil(), err
			}
		}
	}

	random, err := g.readRandom()
	if err != nil {
		return ulid.Nil(), err
	}

	next := ulid.FromParts(ms, random)
	g.last = next
	g.hasLast = true
	return next, nil
}

func (g *MonotonicIdentity) nowMillis() (uint64, error) {
	ts, err := g.clock.Now()
	if err != nil {
		return 0, errdefs.ForSystem(errdefs.GatewayError,
			fmt.Sprintf("Failed to read the current time from the clock gateway. %s", err))
	}
	return ts.AsMilli(), nil
}

// readRandom fills the 80-bit random portion from the entropy source.
func (g *MonotonicIdentity) readRandom() (ulid.Uint128, error) {
	var buf [10]byte
	if _, err := io.ReadFull(g.entropy, buf[:]); err != nil {
		return ulid.Uint128{}, errdefs.ForSystem(errdefs.GatewayError,
			fmt.Sprintf("Failed to read from the entropy source. %s", err))
	}
	return ulid.Uint128{
		Hi: uint64(binary.BigEndian.Uint16(buf[0:2])),
		Lo: binary.BigEndian.Uint64(buf[2:10]),
	}, nil
}
