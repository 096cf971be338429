package fs

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DoublestarGlobber matches glob patterns against the files beneath a root
// directory. Patterns support *, ** and ? as well as character classes and
// alternatives.
type DoublestarGlobber struct{}

// NewGlobber creates a new DoublestarGlobber.
func NewGlobber() *DoublestarGlobber {
	return &DoublestarGlobber{}
}

// Glob returns the files beneath root matching pattern as slash-separated paths
// relative to root, in lexical walk order. Directories are never returned and
// unreadable directories are skipped.
func (g *DoublestarGlobber) Glob(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	return doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
}

// ValidPattern reports whether pattern is well formed.
func ValidPattern(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}

// MatchName reports whether name matches the single-segment wildcard pattern,
// ignoring case.
func MatchName(pattern, name string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, doublestar.ErrBadPattern
	}
	return doublestar.Match(strings.ToLower(pattern), strings.ToLower(name))
}
