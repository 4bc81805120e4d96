// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/attestify/kernel/pkg/errdefs"
	"github.com/attestify/kernel/pkg/ulid"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	u, err := ulid.FromString("01BX5ZZKBKACTAV9WEVGEMMVRZ")
	if err != nil {
		t.Fatalf("FromString error = %v", err)
	}

	report := buildReport(u)
	if report.ULID != "01BX5ZZKBKACTAV9WEVGEMMVRZ" {
		t.Errorf("ULID = %q", report.ULID)
	}
	if report.TimestampMS != u.Time() {
		t.Errorf("TimestampMS = %d, want %d", report.TimestampMS, u.Time())
	}
	if len(report.Random) != 20 {
		t.Errorf("Random = %q, want 20 hex digits", report.Random)
	}
	if len(report.Bytes) != 32 {
		t.Errorf("Bytes = %q, want 32 hex digits", report.Bytes)
	}
	if report.Nil {
		t.Error("Nil = true for a non-nil ULID")
	}
	if report.Time == "" {
		t.Error("Time is empty")
	}
}

func TestBuildReportNil(t *testing.T) {
	t.Parallel()

	report := buildReport(ulid.Nil())
	if report.ULID != "00000000000000000000000000" {
		t.Errorf("ULID = %q", report.ULID)
	}
	if !report.Nil {
		t.Error("Nil = false for the nil ULID")
	}
	if report.Time != "1970-01-01T00:00:00Z" {
		t.Errorf("Time = %q", report.Time)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	known := errdefs.ForUser(errdefs.InvalidInput, "bad input")
	if got := classify(known); got != known {
		t.Errorf("classify(known) = %v, want the original classification", got)
	}

	got := classify(errors.New("boom"))
	if got.Kind != errdefs.Unexpected || !got.IsSystem() {
		t.Errorf("classify(plain error) = %v, want system/unexpected", got)
	}
	if got.Message != "boom" {
		t.Errorf("Message = %q", got.Message)
	}
}
