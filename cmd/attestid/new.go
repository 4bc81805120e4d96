// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attestify/kernel/pkg/gateway"
)

var newCount int

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Mint new ULID identities",
	Long: `Mint one or more ULID identities. Identities minted by a single
invocation are strictly increasing: calls landing on the same millisecond
increment the random portion of the previous identity.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "number of identities to mint")
}

func runNew(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	if newCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", newCount)
	}

	identity := gateway.NewMonotonicIdentity()
	logger.Debug("minting identities", "count", newCount)

	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < newCount; i++ {
		u, err := identity.Generate()
		if err != nil {
			gateway.NewCharmLogger(logger).Error(classify(err), "while minting an identity")
			return err
		}

		if cfg.Output == "json" {
			if err := enc.Encode(buildReport(u)); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), u.String())
	}
	return nil
}
