package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattholt/prefixlang/extensions/locale"
	"github.com/mattholt/prefixlang/internal/config"
	"github.com/mattholt/prefixlang/internal/extension"
	"github.com/mattholt/prefixlang/internal/interp"
	"github.com/mattholt/prefixlang/internal/parser"
	"github.com/mattholt/prefixlang/internal/source"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	dumpAST    bool
	traceRun   bool
	withLocale bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a prefix program",
	Long: `Execute a prefix program from a file or inline expression.

Examples:
  # Run a script file
  prefix run script.pfx

  # Evaluate an inline expression
  prefix run -e 'PRINT("hi");'

  # Dump the parsed AST before running
  prefix run --dump-ast script.pfx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "print a full traceback on a runtime error")
	runCmd.Flags().BoolVar(&withLocale, "with-locale", false, "load the bundled locale reference extension")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readProgram(evalExpr, args)
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

	if dumpAST {
		fmt.Println("AST:")
		dumpBlock(os.Stdout, prog, 0)
		fmt.Println()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	it := interp.New(input, filename)
	it.Global.SetIsolateWrites(cfg.IsolateEnvWrites)
	it.SetMainModule(cfg.IsMainModule)
	it.SetLoader(func(path string) (string, error) {
		return source.ReadFile(resolveImport(filename, path))
	})

	if withLocale {
		if !extension.Load("locale", extension.APIVersion, locale.Register, it.Ext) {
			return fmt.Errorf("locale extension: incompatible registration API version")
		}
	}

	res := it.Run(prog)
	if res.Status == interp.StatusError {
		if traceRun {
			fmt.Fprintln(os.Stderr, it.Traceback(res.Err))
		} else {
			fmt.Fprintln(os.Stderr, res.Err.Format(input))
		}
		return fmt.Errorf("execution failed")
	}
	if code, exited := it.Exited(); exited {
		os.Exit(code)
	}
	return nil
}

func readProgram(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := source.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return content, args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func resolveImport(fromFile, importPath string) string {
	if filepath.IsAbs(importPath) || fromFile == "<eval>" || fromFile == "" {
		return importPath
	}
	return filepath.Join(filepath.Dir(fromFile), importPath)
}
