// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/attestify/kernel/pkg/errdefs"
	"github.com/attestify/kernel/pkg/ulid"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <ulid>",
	Short: "Decode a ULID and show its fields",
	Long: `Decode a 26-character ULID string and display its timestamp,
random portion and binary layout. Decoding accepts lowercase input.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// identityReport is the decoded view of a ULID, shared by the text and the
// JSON renderings.
type identityReport struct {
	ULID        string `json:"ulid"`
	Time        string `json:"time"`
	TimestampMS uint64 `json:"timestamp_ms"`
	Random      string `json:"random"`
	Bytes       string `json:"bytes"`
	Nil         bool   `json:"nil,omitempty"`
}

func buildReport(u ulid.ULID) identityReport {
	r := u.Random()
	b := u.Bytes()
	return identityReport{
		ULID:        u.String(),
		Time:        time.UnixMilli(int64(u.Time())).UTC().Format(time.RFC3339Nano),
		TimestampMS: u.Time(),
		Random:      fmt.Sprintf("%04x%016x", r.Hi, r.Lo),
		Bytes:       hex.EncodeToString(b[:]),
		Nil:         u.IsNil(),
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	u, err := ulid.FromString(args[0])
	if err != nil {
		return fmt.Errorf("cannot decode %q: %w", args[0], err)
	}

	report := buildReport(u)
	if cfg.Output == "json" {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	out := cmd.OutOrStdout()
	printField := func(label, value string) {
		fmt.Fprintln(out, labelStyle.Render(label)+valueStyle.Render(value))
	}
	printField("ULID", report.ULID)
	printField("Time", report.Time)
	printField("Timestamp", fmt.Sprintf("%d ms", report.TimestampMS))
	printField("Random", report.Random)
	printField("Bytes", report.Bytes)
	if report.Nil {
		printField("Nil", "true")
	}
	return nil
}

// classify extracts the errdefs classification from err, falling back to a
// system-level unexpected error.
func classify(err error) errdefs.Error {
	var classified errdefs.Error
	if errors.As(err, &classified) {
		return classified
	}
	return errdefs.ForSystem(errdefs.Unexpected, err.Error())
}
