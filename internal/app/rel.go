package app

import (
	"github.com/spf13/cobra"
)

// NewRelCmd returns a command printing one path relative to another.
func NewRelCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "rel <path> <base>",
		Short: "Print path relative to base",
		Long: `Print the shortest relative path leading from base to path. Both are first
resolved against the working directory. Paths on different roots cannot be
related.`,
		Args: cobra.ExactArgs(2),
		Example: `
pathy rel /home/user/project/src/main.go /home/user/project
pathy rel docs ../other`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			rel, err := mgr.Relative(paths[0], paths[1])
			if err != nil {
				return err
			}
			reporter, err := newReporter(cmd, mgr)
			if err != nil {
				return err
			}
			return reporter.WritePath(cmd.OutOrStdout(), rel)
		},
	}
}
