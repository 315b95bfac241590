// Package main provides the entry point for the outreach CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "outreach",
	Short:         "Personalized outreach mailer and codebase security scanner",
	Long:          "outreach bundles two independent batch pipelines: a bulk personalized-email sender with anti-burst pacing and a sent-ledger for idempotent re-runs, and a static-analysis scanner that reports risky patterns, analyzer results, and stale dependencies.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
