/*
File    : cortado/cmd/cortado/run.go
Package : main

"cortado run <file> [key=value ...]" — the core external interface
(§6 of spec.md) wired to real file I/O, config-driven feature gating,
and process exit codes.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bencinn/cortado/config"
	"github.com/bencinn/cortado/eval"
	"github.com/bencinn/cortado/parser"
	"github.com/bencinn/cortado/value"
)

var dumpAST bool

var runCmd = &cobra.Command{
	Use:   "run <file> [key=value ...]",
	Short: "run a cortado script",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		presets := args[1:]

		src, err := readSource(path)
		if err != nil {
			return err
		}

		program, err := parser.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitStatus = 1
			return nil
		}
		if dumpAST {
			fmt.Fprintln(cmd.OutOrStdout(), parser.Dump(program))
		}

		enabled, err := loadFeatures()
		if err != nil {
			return err
		}

		ev := eval.New(cmd.OutOrStdout(), os.Stdin, enabled)
		for _, kv := range presets {
			name, val, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid trailing argument %q, expected key=value", kv)
			}
			ev.Preset(name, value.NewString(val))
		}

		result, err := ev.Run(program)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitStatus = 1
			return nil
		}
		exitStatus = exitCode(result)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
}

// readSource reads path and normalizes CRLF to LF, matching §4.1.1's
// lexical-layer assumption that the lexer only ever sees LF-terminated
// lines.
func readSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(raw), "\r\n", "\n"), nil
}

func loadFeatures() ([]string, error) {
	enabled, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return config.ApplyOverrides(enabled, enableFlags, disableFlags), nil
}

// exitCode derives a process exit status from a program's final
// value: as_number of the value (a Bool counts as 1 or 0) rounded to
// the nearest integer, taken modulo 256. A String or Array maps to 0,
// and so does falling off the end with the default Number(0).
func exitCode(v value.Value) int {
	d, err := value.AsNumber(v)
	if err != nil {
		return 0
	}
	return int(d.Round(0).IntPart() % 256)
}
