package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyballingall/pathy/internal/app"
)

func main() {
	// Cancel on SIGINT (Ctrl+C) or SIGTERM so 'glob --watch' stops cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil); err != nil {
		stop()
		//nolint:gocritic // os.Exit is intentional
		os.Exit(1)
	}
}
