// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attestify/kernel/pkg/gateway"
	"github.com/attestify/kernel/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link <repository-link>",
	Short: "Validate a repository link",
	Long: `Validate a repository link against the configured allowed schemes.
Links without a scheme receive the configured default scheme before
validation, so "github.com/nape/processes" and
"git://github.com/nape/processes" are both accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runLink,
}

// linkReport is the validated view of a repository link, shared by the text
// and the JSON renderings.
type linkReport struct {
	Link   string `json:"link"`
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
	Path   string `json:"path,omitempty"`
}

func runLink(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	link, err := types.NewRepositoryLink().
		AllowedSchemes(cfg.AllowedSchemes...).
		DefaultScheme(cfg.DefaultScheme).
		Link(args[0]).
		Build()
	if err != nil {
		gateway.NewCharmLogger(newLogger(cfg)).Error(classify(err), "while validating a repository link")
		return err
	}

	u := link.URL()
	report := linkReport{
		Link:   link.String(),
		Scheme: u.Scheme(),
		Host:   u.Host(),
		Path:   u.Path(),
	}
	if cfg.Output == "json" {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	out := cmd.OutOrStdout()
	printField := func(label, value string) {
		if value != "" {
			fmt.Fprintln(out, labelStyle.Render(label)+valueStyle.Render(value))
		}
	}
	printField("Link", report.Link)
	printField("Scheme", report.Scheme)
	printField("Host", report.Host)
	printField("Path", report.Path)
	return nil
}
