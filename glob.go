package pathy

import (
	"fmt"
	"strings"
)

// GlobFiles returns the files beneath root that match any of patterns. Results
// are ordered pattern by pattern, each in the matcher's walk order, and a file
// matched by more than one pattern is listed once, at its first position.
func (l *Locator) GlobFiles(root ChainablePath, patterns ...string) ([]ChainablePath, error) {
	if len(patterns) == 0 {
		return nil, &ArgumentError{Argument: "patterns", Reason: "At least one pattern must be provided"}
	}
	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return nil, &ArgumentError{Argument: "patterns", Reason: "Patterns cannot be null or empty"}
		}
	}

	base, err := l.absolute(root)
	if err != nil {
		return nil, err
	}

	files := []ChainablePath{}
	seen := make(map[ChainablePath]struct{})
	for _, pattern := range patterns {
		matches, gErr := l.globber.Glob(base.String(), pattern)
		if gErr != nil {
			return nil, &InvalidArgumentError{
				Argument: "patterns",
				Reason:   fmt.Sprintf("'%s' is not a valid glob pattern: %v", pattern, gErr),
			}
		}

		l.logger.Debug("globbed files", "root", base, "pattern", pattern, "matches", len(matches))
		for _, match := range matches {
			file := base.withNames(strings.Split(match, "/")...)
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}
	return files, nil
}
