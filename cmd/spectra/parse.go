package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spectra-lang/spectra/internal/syntax"
	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseStats  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its syntax tree",
	Long:  "Parse a Spectra source file and print the resulting syntax tree, or a diagnostic if parsing fails.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "Output format: text, json")
	parseCmd.Flags().BoolVar(&parseStats, "stats", false, "Print the node count after the tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	src := string(data)

	module, err := syntax.Parse(src)
	if err != nil {
		printDiagnostic(cmd, args[0], src, err)
		return errors.New("parse failed")
	}

	out := cmd.OutOrStdout()
	switch parseFormat {
	case "json":
		if err := syntax.FprintJSON(out, module); err != nil {
			return err
		}
	case "text":
		syntax.Fprint(out, module)
	default:
		return fmt.Errorf("unknown output format: %s", parseFormat)
	}

	if parseStats {
		count := 0
		syntax.Inspect(module, func(syntax.Node) bool {
			count++
			return true
		})
		fmt.Fprintf(out, "%d nodes\n", count)
	}

	return nil
}

// printDiagnostic writes a color-styled "file:line:col: error: ..."
// line for a parse failure. End-of-input errors point just past the
// last byte of the file.
func printDiagnostic(cmd *cobra.Command, file, src string, err error) {
	offset := len(src)
	var perr *syntax.ParseError
	if errors.As(err, &perr) && perr.Got != nil {
		offset = perr.Got.Loc.Start
	}
	pos := syntax.PositionFor(src, offset)

	errStyle := color.New(color.Bold, color.FgRed)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s:%s: %s: %v\n", file, pos, errStyle.Sprint("error"), err)
}
