// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"bytes"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attestify/kernel/pkg/errdefs"
	"github.com/attestify/kernel/pkg/types"
)

// stubClock replays a fixed sequence of millisecond readings, repeating the
// last one forever.
type stubClock struct {
	readings []uint64
	i        int
}

func (c *stubClock) Now() (types.UTCTimestamp, error) {
	ms := c.readings[c.i]
	if c.i < len(c.readings)-1 {
		c.i++
	}
	return types.TimestampFromMillis(ms), nil
}

type failingClock struct{}

func (failingClock) Now() (types.UTCTimestamp, error) {
	return types.UTCTimestamp{}, errors.New("clock unavailable")
}

func TestGenerateAdvancingClock(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity(
		WithClock(&stubClock{readings: []uint64{100, 200, 300}}),
		WithEntropy(rand.New(rand.NewSource(1))),
	)

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)
	c, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, uint64(100), a.Time())
	assert.Equal(t, uint64(200), b.Time())
	assert.Equal(t, uint64(300), c.Time())
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(c))
}

func TestGenerateSameMillisecondIncrements(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity(
		WithClock(&stubClock{readings: []uint64{100}}),
		WithEntropy(rand.New(rand.NewSource(1))),
	)

	prev, err := g.Generate()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := g.Generate()
		require.NoError(t, err)

		assert.Equal(t, prev.Time(), next.Time(), "timestamp must not move within the same millisecond")
		want, ok := prev.Increment()
		require.True(t, ok)
		assert.Equal(t, want, next, "same-millisecond ULIDs must increment the random portion")
		prev = next
	}
}

func TestGenerateClockRegression(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity(
		WithClock(&stubClock{readings: []uint64{500, 400}}),
		WithEntropy(rand.New(rand.NewSource(1))),
	)

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, uint64(500), b.Time(), "a regressed clock must not move the timestamp backwards")
	assert.Equal(t, -1, a.Compare(b))
}

func TestGenerateRandomExhaustion(t *testing.T) {
	t.Parallel()

	// All-ones entropy saturates the random portion immediately, so the
	// second same-millisecond call cannot increment and has to wait for
	// the clock reading after the repeat.
	g := NewMonotonicIdentity(
		WithClock(&stubClock{readings: []uint64{100, 100, 100, 101}}),
		WithEntropy(allOnesThenRandom()),
	)

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, uint64(100), a.Time())
	_, ok := a.Increment()
	assert.False(t, ok, "first ULID should have a saturated random portion")

	assert.Equal(t, uint64(101), b.Time(), "exhaustion must fall back to a fresh timestamp")
	assert.Equal(t, -1, a.Compare(b))
}

// allOnesThenRandom yields ten 0xFF bytes and then seeded randomness.
func allOnesThenRandom() *bytes.Reader {
	buf := bytes.Repeat([]byte{0xFF}, 10)
	tail := make([]byte, 10)
	rand.New(rand.NewSource(2)).Read(tail)
	return bytes.NewReader(append(buf, tail...))
}

func TestGenerateClockError(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity(WithClock(failingClock{}))

	_, err := g.Generate()
	require.Error(t, err)

	var classified errdefs.Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, errdefs.GatewayError, classified.Kind)
	assert.True(t, classified.IsSystem())
}

func TestGenerateEntropyError(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity(
		WithClock(&stubClock{readings: []uint64{100}}),
		WithEntropy(bytes.NewReader(nil)),
	)

	_, err := g.Generate()
	require.Error(t, err)

	var classified errdefs.Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, errdefs.GatewayError, classified.Kind)
}

func TestGenerateConcurrentUnique(t *testing.T) {
	t.Parallel()

	g := NewMonotonicIdentity()

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				u, err := g.Generate()
				assert.NoError(t, err)

				mu.Lock()
				assert.False(t, seen[u.String()], "duplicate ULID %s", u)
				seen[u.String()] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
