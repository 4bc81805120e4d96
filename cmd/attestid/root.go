// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/attestify/kernel/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose forces debug logging regardless of the configured level
	verbose bool
	// cfgDir allows specifying a custom config directory
	cfgDir string
	// output overrides the configured output format ("text" or "json")
	output string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "attestid",
		Short: "Mint and inspect ULID entity identities",
		Long: TitleStyle.Render("attestid") + SubtitleStyle.Render(" - Mint and inspect ULID entity identities") + `

attestid works with ULIDs (Universally Unique Lexicographically
Sortable Identifiers): 128-bit identifiers with a 48-bit millisecond
timestamp and an 80-bit random tail, canonically rendered as 26
characters of Crockford Base32.

` + SubtitleStyle.Render("Examples:") + `
  attestid new              Mint a single identity
  attestid new -n 10        Mint ten monotonically increasing identities
  attestid inspect <ulid>   Decode an identity and show its fields
  attestid link <repo>      Validate a repository link
  attestid config init      Write the default configuration file`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "config directory (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text or json (default from config)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func initRootConfig() {
	if cfgDir != "" {
		config.SetConfigDirOverride(cfgDir)
	}
}

// loadConfig reads the configuration and applies command-line overrides.
// Config errors are surfaced as warnings; the defaults keep the CLI usable.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.DefaultConfig()
	}
	if output != "" {
		cfg.Output = output
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// newLogger builds the CLI logger honoring the configured level.
func newLogger(cfg *config.Config) *charmlog.Logger {
	logger := charmlog.New(os.Stderr)
	if level, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
