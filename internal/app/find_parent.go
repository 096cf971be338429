package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
)

// NewFindParentCmd returns a command locating the closest ancestor directory
// containing a file matching any of the given wildcards.
func NewFindParentCmd(mgr Manager) *cobra.Command {
	var from pathValue

	cmd := &cobra.Command{
		Use:   "find-parent <wildcard>...",
		Short: "Find the closest directory containing a matching file",
		Long: `Walk up from a starting path, closest directory first, and print the first
directory that directly contains a file matching any of the wildcards.
Wildcards support * and ? and ignore case.`,
		Args: cobra.MinimumNArgs(1),
		Example: `
pathy find-parent '*.sln'
pathy find-parent --from src/app go.mod go.work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := mgr.FindParent(from.Path(pathy.MustFrom(".")), args)
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

	cmd.Flags().Var(&from, "from", "Path to start from (default is the working directory)")
	return cmd
}
