// Package main removes build and test artefacts from the repository root.
package main

import (
	"fmt"

	"github.com/andyballingall/pathy"
)

var (
	artefactDirs     = []string{"bin", "dist"}
	artefactPatterns = []string{".pathy.log", "coverage*", "*.out", "*.test", "*.coverprofile", "profile.cov"}
)

func main() {
	root, err := pathy.Current()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	targets := make([]pathy.ChainablePath, 0, len(artefactDirs))
	for _, d := range artefactDirs {
		if dir := root.Chain(d); pathy.IsDirectory(dir) {
			targets = append(targets, dir)
		}
	}

	files, err := pathy.GlobFiles(root, artefactPatterns...)
	if err != nil {
		fmt.Printf("❌ Failed to match artefacts: %v\n", err)
	}
	targets = append(targets, files...)

	for _, p := range targets {
		if err := pathy.DeleteFileOrDirectory(p); err != nil {
			fmt.Printf("❌ Failed to remove %s: %v\n", p, err)
			continue
		}
		fmt.Printf("✅ Removed %s\n", p)
	}
}
