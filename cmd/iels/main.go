// Package main provides the iels CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "iels",
		Short: "Informational Earth-Likeness Score toolkit",
		Long: `IELS generates synthetic informational systems, normalizes their indicator
series, and combines the per-indicator means into a single Earth-likeness score.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newScoreCmd(),
		newCompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
