package cmd

import (
	"fmt"

	"github.com/mattholt/prefixlang/internal/lexer"
	"github.com/mattholt/prefixlang/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexOnlyBad  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a prefix file or expression",
	Long: `Tokenize a prefix program and print the resulting tokens, for
debugging the lexer.

Examples:
  prefix lex script.pfx
  prefix lex -e 'PRINT(1);' --show-pos`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyBad, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readProgram(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	count, errCount := 0, 0
	for {
		tok := l.NextToken()
		isIllegal := tok.Kind == token.ILLEGAL
		if !lexOnlyBad || isIllegal {
			printToken(tok, isIllegal)
		}
		count++
		if isIllegal {
			errCount++
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if errCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errCount)
	}
	return nil
}

func printToken(tok token.Token, illegal bool) {
	out := fmt.Sprintf("[%-10s]", tok.Kind)
	switch {
	case illegal:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Kind)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
