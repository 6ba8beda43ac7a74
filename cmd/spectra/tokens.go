package main

import (
	"fmt"
	"os"

	"github.com/spectra-lang/spectra/internal/syntax"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Long:  "Lex a Spectra source file and print one token per line with its byte span.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	lex := syntax.NewLexer(string(data))
	for {
		tok := lex.Next()
		if tok.Kind == syntax.EOF {
			break
		}
		fmt.Fprintf(out, "%-12s %s\n", tok.Loc, tok)
	}
	return nil
}
