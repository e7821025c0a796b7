package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if semver.IsValid(v) {
			v = semver.Canonical(v)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "makhraj", v)
	},
}
