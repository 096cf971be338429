package app

import (
	"github.com/spf13/cobra"
)

// NewMkdirCmd returns a command creating directories and their parents.
func NewMkdirCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories, including any missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			for _, p := range paths {
				if err := mgr.MakeDirectory(p); err != nil {
					return err
				}
				cmd.Printf("Created %s\n", p)
			}
			return nil
		},
	}
}
