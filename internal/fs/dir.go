package fs

import (
	"os"
	"slices"
)

// ListFiles returns the names of the regular files (and other non-directory
// entries) directly inside dirPath, sorted by name.
func ListFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}
