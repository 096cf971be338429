package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/config"
	"github.com/andyballingall/pathy/internal/fs"
)

// NewInitCmd returns a command writing a default .pathy.yml.
func NewInitCmd(env fs.EnvProvider) *cobra.Command {
	return &cobra.Command{
		Use:   InitCmdName + " [directory]",
		Short: "Create a .pathy.yml with the default settings",
		Long: `Create a commented .pathy.yml in the directory (default is the working
directory). An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := optionalPath(args)
			if err != nil {
				return err
			}
			path, err := config.WriteDefault(pathy.NewLocator(nil, nil, env, nil), dir)
			if err != nil {
				return err
			}
			cmd.Printf("Created %s\n", path)
			return nil
		},
	}
}
