package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Spectra language frontend",
	Long: `Spectra is a small expression-oriented language. This tool runs its
frontend: it lexes and parses a source file and prints the resulting
token stream or syntax tree.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
