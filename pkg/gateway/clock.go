// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"time"

	"github.com/attestify/kernel/pkg/types"
)

// SystemClock is a Clock backed by the operating system wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time at millisecond precision.
func (SystemClock) Now() (types.UTCTimestamp, error) {
	return types.TimestampFromMillis(uint64(time.Now().UnixMilli())), nil
}
