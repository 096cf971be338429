// Package main builds the pathy binary into bin/, stamping the version from git.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/andyballingall/pathy"
)

const versionVar = "github.com/andyballingall/pathy/internal/app.Version"

func main() {
	ctx := context.Background()
	version := describe(ctx)

	bin := pathy.MustFrom("bin")
	if err := pathy.CreateDirectoryRecursively(bin); err != nil {
		fmt.Printf("❌ Failed to create %s: %v\n", bin, err)
		os.Exit(1)
	}

	name := "pathy"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	output := bin.Chain(name)
	fmt.Printf("Building pathy %s...\n", version)

	cmd := exec.CommandContext(ctx, "go", "build",
		"-ldflags", fmt.Sprintf("-X %s=%s", versionVar, version),
		"-o", output.String(), "./cmd/pathy")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", output)
}

// describe returns the git description of HEAD, or "dev" outside a repository.
func describe(ctx context.Context) string {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--always", "--dirty")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "dev"
	}
	return strings.TrimSpace(out.String())
}
