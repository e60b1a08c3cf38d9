package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goaoc/internal/configloader"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Long: `List the GOAOC_* environment variables goaoc reads, with their
current values. Variables may also be set in a .env file in the working
directory; values already in the environment take precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := configloader.ListEnvVars()
			out := cmd.OutOrStdout()
			for _, name := range slices.Sorted(maps.Keys(vars)) {
				value, set := os.LookupEnv(name)
				if !set {
					value = "(unset)"
				}
				if _, err := fmt.Fprintf(out, "%-20s %-14s %s\n", name, value, vars[name]); err != nil {
					return withExitCode(ExitIOError, err)
				}
			}
			return nil
		},
	}
}
