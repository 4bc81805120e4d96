// SPDX-License-Identifier: MPL-2.0

package types

import (
	"math"
	"testing"
)

func TestTimestampFromNanos(t *testing.T) {
	t.Parallel()

	ts := TimestampFromNanos(1_500_000)
	if got := ts.AsNano(); got != 1_500_000 {
		t.Errorf("AsNano() = %d, want 1500000", got)
	}
	// Views truncate toward zero, no rounding.
	if got := ts.AsMilli(); got != 1 {
		t.Errorf("AsMilli() = %d, want 1", got)
	}
	if got := ts.AsSec(); got != 0 {
		t.Errorf("AsSec() = %d, want 0", got)
	}
}

func TestTimestampFromMillis(t *testing.T) {
	t.Parallel()

	ts := TimestampFromMillis(1_234_567)
	if got := ts.AsNano(); got != 1_234_567_000_000 {
		t.Errorf("AsNano() = %d, want 1234567000000", got)
	}
	if got := ts.AsMilli(); got != 1_234_567 {
		t.Errorf("AsMilli() = %d, want 1234567", got)
	}
	if got := ts.AsSec(); got != 1_234 {
		t.Errorf("AsSec() = %d, want 1234", got)
	}
}

func TestTimestampFromMillisSaturates(t *testing.T) {
	t.Parallel()

	ts := TimestampFromMillis(math.MaxUint64)
	if got := ts.AsNano(); got != math.MaxUint64 {
		t.Errorf("AsNano() = %d, want saturation at MaxUint64", got)
	}

	// The largest millisecond value that converts exactly.
	const maxExact = math.MaxUint64 / 1_000_000
	ts = TimestampFromMillis(maxExact)
	if got := ts.AsMilli(); got != maxExact {
		t.Errorf("AsMilli() = %d, want %d", got, uint64(maxExact))
	}
}

func TestTimestampBefore(t *testing.T) {
	t.Parallel()

	a := TimestampFromMillis(1)
	b := TimestampFromMillis(2)
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before ordering is inconsistent")
	}
}
