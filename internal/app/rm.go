package app

import (
	"github.com/spf13/cobra"
)

// NewRmCmd returns a command deleting files and directories.
func NewRmCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete files and directories",
		Long:  `Delete each path. Directories are deleted with everything inside them. Missing paths are ignored.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			if err := mgr.Delete(paths); err != nil {
				return err
			}
			for _, p := range paths {
				cmd.Printf("Deleted %s\n", p)
			}
			return nil
		},
	}
}
