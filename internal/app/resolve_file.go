package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
)

// NewResolveFileCmd returns a command finding a file by name, ignoring case.
func NewResolveFileCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-file <path> <file-name>",
		Short: "Find a file by name, ignoring case",
		Long: `If path is a file named file-name (ignoring case) it is printed. If path is a
directory, its direct child file with that name is printed using the name
as stored on disk.`,
		Args: cobra.ExactArgs(2),
		Example: `
pathy resolve-file . readme.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathy.From(args[0])
			if err != nil {
				return err
			}
			found, err := mgr.ResolveFile(p, args[1])
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
