package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/report"
)

// newReporter picks the reporter for cmd: the --format flag if given,
// otherwise the configured format.
func newReporter(cmd *cobra.Command, mgr Manager) (report.Reporter, error) {
	format := mgr.Config().Format
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = f.Value.String()
	}
	noColour, _ := cmd.Flags().GetBool("nocolour")
	return report.New(format, !noColour)
}

// parsePaths parses each argument as a ChainablePath.
func parsePaths(args []string) ([]pathy.ChainablePath, error) {
	paths := make([]pathy.ChainablePath, 0, len(args))
	for _, a := range args {
		p, err := pathy.From(a)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// optionalPath parses args[0] if present and returns "." otherwise.
func optionalPath(args []string) (pathy.ChainablePath, error) {
	if len(args) == 0 {
		return pathy.From(".")
	}
	return pathy.From(args[0])
}
