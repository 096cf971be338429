package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/watch"
)

// NewGlobCmd returns a command listing files matching glob patterns.
func NewGlobCmd(mgr Manager) *cobra.Command {
	var root pathValue
	var watchChanges bool

	cmd := &cobra.Command{
		Use:   "glob [pattern...]",
		Short: "List files matching glob patterns",
		Long: `List the files beneath a root directory matching any of the patterns. ** matches
any number of directories. Results are grouped by pattern, each file listed
once. Without patterns, those in .pathy.yml are used.

With --watch, the patterns are re-run and the results printed again whenever
something beneath the root changes, until interrupted.`,
		Example: `
pathy glob '**/*.go'
pathy glob --root src '**/*.ts' '**/*.tsx'
pathy glob --watch '**/*.md'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = mgr.Config().Patterns
			}
			dir := root.Path(pathy.MustFrom("."))

			reporter, err := newReporter(cmd, mgr)
			if err != nil {
				return err
			}

			files, err := mgr.Glob(dir, patterns)
			if err != nil {
				return err
			}
			if err = reporter.WritePaths(cmd.OutOrStdout(), files); err != nil {
				return err
			}
			if !watchChanges {
				return nil
			}

			return mgr.WatchGlob(cmd.Context(), dir, patterns, func(e watch.Event) {
				_ = reporter.WriteChange(cmd.OutOrStdout(), e.Trigger, e.Files)
			}, nil)
		},
	}

	cmd.Flags().Var(&root, "root", "Directory to search beneath (default is the working directory)")
	cmd.Flags().BoolVarP(&watchChanges, "watch", "w", false, "Watch for changes and re-run the patterns")
	return cmd
}
