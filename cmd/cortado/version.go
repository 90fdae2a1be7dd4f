/*
File    : cortado/cmd/cortado/version.go
Package : main

"cortado version" and the root command's --version string, grounded on
the teacher's --version handling and CWBudde-go-dws's use of
rootCmd.Version. buildVersion is overridable at link time via
-ldflags "-X main.version=...", matching the teacher's build pattern.
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

func buildVersion() string { return version }

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print cortado's version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cortado %s\n", version)
	},
}
