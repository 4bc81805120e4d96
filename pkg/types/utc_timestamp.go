// SPDX-License-Identifier: MPL-2.0

package types

import "math"

const nanosPerMilli = 1_000_000

// UTCTimestamp is a point in time as nanoseconds since the Unix epoch.
// The value is stored at nanosecond precision; the millisecond and second
// views truncate (integer division, no rounding).
type UTCTimestamp struct {
	nanos uint64
}

// TimestampFromNanos constructs a UTCTimestamp from a nanosecond value,
// stored exactly.
func TimestampFromNanos(ns uint64) UTCTimestamp {
	return UTCTimestamp{nanos: ns}
}

// TimestampFromMillis constructs a UTCTimestamp from a millisecond value.
// The multiplication to nanoseconds saturates at the maximum representable
// value instead of wrapping.
func TimestampFromMillis(ms uint64) UTCTimestamp {
	if ms > math.MaxUint64/nanosPerMilli {
		return UTCTimestamp{nanos: math.MaxUint64}
	}
	return UTCTimestamp{nanos: ms * nanosPerMilli}
}

// AsNano returns the exact stored nanosecond value.
func (t UTCTimestamp) AsNano() uint64 { return t.nanos }

// AsMilli returns the millisecond view, truncated toward zero.
func (t UTCTimestamp) AsMilli() uint64 { return t.nanos / nanosPerMilli }

// AsSec returns the second view, truncated toward zero.
func (t UTCTimestamp) AsSec() uint64 { return t.nanos / 1_000_000_000 }

// Before reports whether t is strictly earlier than o.
func (t UTCTimestamp) Before(o UTCTimestamp) bool { return t.nanos < o.nanos }
