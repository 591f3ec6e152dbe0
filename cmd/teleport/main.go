// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/teleport/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "teleport",
	Short: "Teleport - burn/approve/mint token bridge",
	Long: `Teleport moves fungible tokens between chains. A burn on the source chain
creates a proof, the destination approver approves it, and the recipient
mints on the destination by presenting the same transfer fields.

This CLI computes proof and route hashes, decodes emitted events, runs bridge
operations against a local store and serves the event indexer.`,
	Version:       fmt.Sprintf("%s (built %s)", version, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(intentHashCmd)
	rootCmd.AddCommand(routeHashCmd)
	rootCmd.AddCommand(decodeEventCmd)
	rootCmd.AddCommand(setAllowanceCmd)
	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(creditCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
}
