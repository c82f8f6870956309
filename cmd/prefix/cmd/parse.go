package cmd

import (
	"fmt"
	"os"

	"github.com/mattholt/prefixlang/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a prefix file and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, _, err := readProgram(evalExpr, args)
	if err != nil {
		return err
	}

	p := parser.New(input)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	dumpBlock(os.Stdout, prog, 0)
	return nil
}
