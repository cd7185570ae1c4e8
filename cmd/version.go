package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "quizgen", displayVersion(version))
	},
}

// displayVersion canonicalises v ("1.2" becomes "v1.2.0"). Development
// builds fall back to the module version recorded by go install.
func displayVersion(v string) string {
	if c := semver.Canonical(normalizeVersion(v)); c != "" {
		return c
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if c := semver.Canonical(info.Main.Version); c != "" {
			return c
		}
	}
	return v
}

func normalizeVersion(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}
	return v
}
