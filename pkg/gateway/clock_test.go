// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClockNow(t *testing.T) {
	t.Parallel()

	before := uint64(time.Now().UnixMilli())
	ts, err := SystemClock{}.Now()
	require.NoError(t, err)
	after := uint64(time.Now().UnixMilli())

	assert.GreaterOrEqual(t, ts.AsMilli(), before)
	assert.LessOrEqual(t, ts.AsMilli(), after)
}
