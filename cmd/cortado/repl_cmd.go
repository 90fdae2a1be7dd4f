/*
File    : cortado/cmd/cortado/repl_cmd.go
Package : main

"cortado repl" — wires the repl package to the persistent --config/
--enable/--disable feature set, same as "run".
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bencinn/cortado/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive cortado shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := loadFeatures()
		if err != nil {
			return err
		}
		return repl.Run(cmd.OutOrStdout(), os.Stdin, enabled)
	},
}
