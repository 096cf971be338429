package app

import (
	"github.com/spf13/cobra"
)

// NewMvCmd returns a command moving files and directories into a destination directory.
func NewMvCmd(mgr Manager) *cobra.Command {
	var newName string

	cmd := &cobra.Command{
		Use:   "mv <path>... <destination>",
		Short: "Move files and directories into a directory",
		Long: `Move each path into the destination directory, keeping its name. With --name,
a single path is moved and given the new name.`,
		Args: cobra.MinimumNArgs(2),
		Example: `
pathy mv notes.txt todo.txt archive
pathy mv --name 2024.log app.log logs/old`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			sources, destination := paths[:len(paths)-1], paths[len(paths)-1]
			// An explicitly empty name is passed on so the locator rejects it
			if cmd.Flags().Changed("name") && newName == "" {
				newName = " "
			}
			if err := mgr.Move(destination, sources, newName); err != nil {
				return err
			}
			for _, p := range sources {
				cmd.Printf("Moved %s to %s\n", p, destination)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&newName, "name", "n", "", "New name for the moved path")
	return cmd
}
