package app

import (
	"github.com/spf13/cobra"
)

// NewProjectRootCmd returns a command locating the project root using the
// configured markers.
func NewProjectRootCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "project-root [path]",
		Short: "Find the root of the project containing a path",
		Long: `Walk up from the path (default is the working directory) and print the first
directory containing one of the markers listed in .pathy.yml. Without a
configuration file the markers are go.mod, *.sln, package.json and .pathy.yml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := optionalPath(args)
			if err != nil {
				return err
			}
			dir, err := mgr.ProjectRoot(start)
			if err != nil {
				return err
			}
			reporter, err := newReporter(cmd, mgr)
			if err != nil {
				return err
			}
			return reporter.WritePath(cmd.OutOrStdout(), dir)
		},
	}
}
