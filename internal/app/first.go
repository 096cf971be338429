package app

import (
	"github.com/spf13/cobra"
)

// NewFirstCmd returns a command printing the first existing candidate path.
func NewFirstCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "first <path>...",
		Short: "Print the first of several paths that exists",
		Long: `Print the first candidate, in the order given, that exists as a file or
directory. The command fails when none of them exist.`,
		Args: cobra.MinimumNArgs(1),
		Example: `
pathy first config.json .subdirectory/config.json
pathy first app.config config/app.config .config/app.config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := mgr.FindFirst(args)
			if err != nil {
				return err
			}
			reporter, err := newReporter(cmd, mgr)
			if err != nil {
				return err
			}
			return reporter.WritePath(cmd.OutOrStdout(), found)
		},
	}
}
