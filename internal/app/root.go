package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/config"
	"github.com/andyballingall/pathy/internal/fs"
	"github.com/andyballingall/pathy/internal/validator"
)

// Version is the current version of pathy, set at build time.
var Version = "dev"

const InitCmdName = "init"

var LongDescription = `
pathy works with filesystem paths the same way on every platform. Paths are
normalised on input: both / and \ separate segments, '.' and '..' are folded
away, and drive letters and UNC shares are recognised everywhere.

Use it to inspect paths, locate project roots and files, run glob patterns,
watch them for changes, and move or delete files from scripts.

Settings are read from the closest .pathy.yml at or above the working
directory. Run 'pathy init' to create one.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var format formatValue
	var configPath pathValue

	rootCmd := &cobra.Command{
		Use:           "pathy",
		Short:         "Cross-platform path inspection, search and globbing",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Already initialised, e.g. by tests
			if lazy.HasInner() {
				return nil
			}

			wd, err := pathy.CurrentOf(env)
			if err != nil {
				return fmt.Errorf("cannot determine the working directory: %w", err)
			}

			bootstrap := pathy.NewLocator(nil, nil, env, nil)
			cfg, err := config.Discover(bootstrap, env, wd, configPath.String(), validator.NewSanthoshCompiler())
			if err != nil {
				return fmt.Errorf("configuration failed: %w", err)
			}

			logDir := ""
			if !cfg.Dir().IsNull() {
				logDir = cfg.Dir().String()
			}
			logger, closer, err := setupLogger(stderr, ll, logDir, env)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			logger.Debug("configuration loaded", "path", cfg.Path(), "format", cfg.Format)

			lazy.SetInner(NewCLIManager(logger, pathy.NewLocator(nil, nil, env, logger), cfg, closer))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return lazy.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().VarP(&format, "format", "f", "Output format (text, json); overrides .pathy.yml")
	rootCmd.PersistentFlags().Var(&configPath, "config", "Path to a configuration file (overrides "+config.ConfigEnvVar+")")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	rootCmd.AddCommand(NewInitCmd(env))
	rootCmd.AddCommand(NewInfoCmd(lazy))
	rootCmd.AddCommand(NewFirstCmd(lazy))
	rootCmd.AddCommand(NewFindParentCmd(lazy))
	rootCmd.AddCommand(NewProjectRootCmd(lazy))
	rootCmd.AddCommand(NewResolveFileCmd(lazy))
	rootCmd.AddCommand(NewRelCmd(lazy))
	rootCmd.AddCommand(NewGlobCmd(lazy))
	rootCmd.AddCommand(NewMkdirCmd(lazy))
	rootCmd.AddCommand(NewRmCmd(lazy))
	rootCmd.AddCommand(NewMvCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
