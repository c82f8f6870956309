// Package cmd implements the prefix CLI, mirroring the teacher's
// spf13/cobra command layout: a root command with verbose/config-path
// flags and run/lex/parse/version subcommands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "prefix",
	Short: "A prefix-notation language interpreter",
	Long: `prefix is a Go implementation of a small prefix-notation scripting
language: every operation, builtin or user-defined, is written
OPERATOR(args...) with no infix syntax at all.

It supports:
  - Int/Flt/Str/Func/Tns values with static per-binding type tags
  - Lexically-scoped closures
  - GOTO/GOTOPOINT, BREAK with depth, TRY/CATCH
  - A native extension ABI for registering new operators and hooks`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "prefix.yaml", "path to a YAML config file (missing file uses defaults)")
}
