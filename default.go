package pathy

import (
	"time"
)

// defaultLocator backs the package-level convenience functions.
var defaultLocator = NewLocator(nil, nil, nil, nil)

// Exists reports whether p refers to an existing file or directory.
func Exists(p ChainablePath) bool { return defaultLocator.Exists(p) }

// IsFile reports whether p refers to an existing file.
func IsFile(p ChainablePath) bool { return defaultLocator.IsFile(p) }

// IsDirectory reports whether p refers to an existing directory.
func IsDirectory(p ChainablePath) bool { return defaultLocator.IsDirectory(p) }

// LastWriteTimeUTC returns the modification time of p, or the zero time.
func LastWriteTimeUTC(p ChainablePath) time.Time { return defaultLocator.LastWriteTimeUTC(p) }

// FindFirst returns the first of paths that exists, or Empty.
// This is a convenience function that uses the default Locator.
func FindFirst(paths ...ChainablePath) (ChainablePath, error) {
	return defaultLocator.FindFirst(paths...)
}

// FindFirstString returns the first of paths that exists, or Empty.
// This is a convenience function that uses the default Locator.
func FindFirstString(paths ...string) (ChainablePath, error) {
	return defaultLocator.FindFirstString(paths...)
}

// ResolveFile finds fileName at p, ignoring case.
// This is a convenience function that uses the default Locator.
func ResolveFile(p ChainablePath, fileName string) (ChainablePath, error) {
	return defaultLocator.ResolveFile(p, fileName)
}

// FindParentWithFileMatching returns the closest ancestor of p containing a
// file matching any of wildcards, or Null.
// This is a convenience function that uses the default Locator.
func FindParentWithFileMatching(p ChainablePath, wildcards ...string) (ChainablePath, error) {
	return defaultLocator.FindParentWithFileMatching(p, wildcards...)
}

// GlobFiles returns the files beneath root matching any of patterns.
// This is a convenience function that uses the default Locator.
func GlobFiles(root ChainablePath, patterns ...string) ([]ChainablePath, error) {
	return defaultLocator.GlobFiles(root, patterns...)
}

// CreateDirectoryRecursively creates p and any missing parents.
func CreateDirectoryRecursively(p ChainablePath) error {
	return defaultLocator.CreateDirectoryRecursively(p)
}

// DeleteFileOrDirectory deletes p, recursively if it is a directory.
func DeleteFileOrDirectory(p ChainablePath) error {
	return defaultLocator.DeleteFileOrDirectory(p)
}

// MoveFileOrDirectory moves src into destination, keeping its name.
func MoveFileOrDirectory(src, destination ChainablePath) error {
	return defaultLocator.MoveFileOrDirectory(src, destination)
}

// MoveFileOrDirectoryAs moves src into destination under newName.
func MoveFileOrDirectoryAs(src, destination ChainablePath, newName string) error {
	return defaultLocator.MoveFileOrDirectoryAs(src, destination, newName)
}
