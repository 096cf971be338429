package app

import (
	"github.com/spf13/cobra"
)

// NewInfoCmd returns a command describing one or more paths.
func NewInfoCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "info [path...]",
		Short: "Show how a path is parsed and what it refers to",
		Long: `Show the normalised form of each path along with its kind, root, parent,
name and extension, and whether it exists as a file or directory.
With no arguments the working directory is described.`,
		Example: `
pathy info
pathy info 'C:\Projects\..\Repo\README.md'
pathy info --format json ./docs/guide.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			reporter, err := newReporter(cmd, mgr)
			if err != nil {
				return err
			}
			for _, p := range paths {
				if err := reporter.WriteInfo(cmd.OutOrStdout(), mgr.Info(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
