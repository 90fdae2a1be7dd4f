/*
File    : cortado/cmd/cortado/root.go
Package : main

cortado's CLI entrypoint, grounded on CWBudde-go-dws/cmd/dwscript's
cobra-based command tree, restructured around this spec's external
interface (source, features, writer, stdin in, exit_value out). The
persistent --config/--enable/--disable flags feed config.Load +
config.ApplyOverrides ahead of every subcommand that runs a program.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	enableFlags  []string
	disableFlags []string
)

var rootCmd = &cobra.Command{
	Use:     "cortado",
	Short:   "cortado is a tree-walking interpreter for a small decimal-arithmetic scripting language",
	Version: buildVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a cortado.toml feature config")
	rootCmd.PersistentFlags().StringArrayVar(&enableFlags, "enable", nil, "enable a gated built-in (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&disableFlags, "disable", nil, "disable a gated built-in (repeatable)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(benchCmd)
}

// Execute runs the root command, returning the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}

// exitStatus is set by whichever subcommand ran, since cobra's own
// Execute only reports parse/usage errors, not a program's own
// exit_value.
var exitStatus int
