package pathy

import (
	"strings"

	"github.com/andyballingall/pathy/internal/fs"
)

// FindFirst returns the first of paths that exists as a file or directory, or
// Empty if none of them do. At least one path must be given.
func (l *Locator) FindFirst(paths ...ChainablePath) (ChainablePath, error) {
	if len(paths) == 0 {
		return Empty, &ArgumentError{Argument: "paths", Reason: "At least one path must be provided"}
	}

	for _, p := range paths {
		if l.Exists(p) {
			l.logger.Debug("found existing path", "path", p)
			return p, nil
		}
	}
	return Empty, nil
}

// FindFirstString parses each of paths and returns the first that exists, or
// Empty if none of them do.
func (l *Locator) FindFirstString(paths ...string) (ChainablePath, error) {
	if len(paths) == 0 {
		return Empty, &ArgumentError{Argument: "paths", Reason: "At least one path must be provided"}
	}

	candidates := make([]ChainablePath, 0, len(paths))
	for _, s := range paths {
		p, err := From(s)
		if err != nil {
			return Empty, err
		}
		candidates = append(candidates, p)
	}
	return l.FindFirst(candidates...)
}

// ResolveFile finds fileName at p, ignoring case. If p is itself a file with
// that name it is returned; if p is a directory, its direct child file with
// that name is returned using the name as stored on disk. Otherwise Empty is
// returned.
func (l *Locator) ResolveFile(p ChainablePath, fileName string) (ChainablePath, error) {
	if strings.TrimSpace(fileName) == "" {
		return Empty, &InvalidArgumentError{Argument: "fileName", Reason: "the file name must not be null or empty"}
	}

	if l.IsFile(p) {
		if strings.EqualFold(p.Name(), fileName) {
			return p, nil
		}
		return Empty, nil
	}

	if !l.IsDirectory(p) {
		return Empty, nil
	}

	abs, err := l.absolute(p)
	if err != nil {
		return Empty, err
	}
	names, err := l.fs.ListFiles(abs.String())
	if err != nil {
		l.logger.Debug("cannot list directory", "path", abs, "error", err)
		return Empty, nil
	}
	for _, name := range names {
		if strings.EqualFold(name, fileName) {
			return p.withNames(name), nil
		}
	}
	return Empty, nil
}

// FindParentWithFileMatching walks up from p, closest directory first, and
// returns the first directory that directly contains a file matching any of
// the wildcards. Wildcards support * and ? and ignore case. The walk starts at
// p when it is a directory and at its parent otherwise. Null is returned if the
// root is reached without a match.
func (l *Locator) FindParentWithFileMatching(p ChainablePath, wildcards ...string) (ChainablePath, error) {
	if len(wildcards) == 0 {
		return Null, &ArgumentError{Argument: "wildcards", Reason: "At least one wildcard must be provided"}
	}
	for _, w := range wildcards {
		if strings.TrimSpace(w) == "" {
			return Null, &ArgumentError{Argument: "wildcards", Reason: "Wildcards cannot be null or empty"}
		}
		if !fs.ValidPattern(w) {
			return Null, invalidWildcard(w)
		}
	}

	start, err := l.absolute(p)
	if err != nil {
		return Null, err
	}
	if !l.IsDirectory(start) {
		start = start.Parent()
	}

	for dir := start; !dir.IsEmpty(); dir = dir.Parent() {
		matched, mErr := l.containsMatchingFile(dir, wildcards)
		if mErr != nil {
			return Null, mErr
		}
		if matched {
			l.logger.Debug("found matching ancestor", "path", p, "ancestor", dir)
			return dir, nil
		}
	}
	return Null, nil
}

func (l *Locator) containsMatchingFile(dir ChainablePath, wildcards []string) (bool, error) {
	names, err := l.fs.ListFiles(dir.String())
	if err != nil {
		l.logger.Debug("cannot list directory", "path", dir, "error", err)
		return false, nil
	}

	for _, name := range names {
		for _, w := range wildcards {
			ok, mErr := fs.MatchName(w, name)
			if mErr != nil {
				return false, invalidWildcard(w)
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

func invalidWildcard(w string) error {
	return &InvalidArgumentError{Argument: "wildcards", Reason: "'" + w + "' is not a valid wildcard"}
}
