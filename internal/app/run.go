package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/pathy/internal/fs"
)

// Run executes the pathy command line in args, where args[0] is the program
// name. A cancelled context is reported as an interruption rather than a failure.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}

	if envProvider == nil {
		envProvider = fs.NewEnvProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, stderr, envProvider)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "Interrupted by user")
		_ = lazy.Close()
		return nil
	}
	if err != nil {
		// SilenceErrors is set, so the error is printed here
		fmt.Fprintf(stderr, "Error: %v\n", err)
		_ = lazy.Close()
		return err
	}
	return nil
}
