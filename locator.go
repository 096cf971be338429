package pathy

import (
	iofs "io/fs"
	"log/slog"
	"time"

	"github.com/andyballingall/pathy/internal/fs"
)

// FileSystem is the filesystem the Locator queries and modifies. Paths passed
// to it are always absolute.
type FileSystem interface {
	// Stat returns information about the file or directory at path.
	Stat(path string) (iofs.FileInfo, error)
	// ListFiles returns the names of the files directly inside dir.
	ListFiles(dir string) ([]string, error)
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Remove deletes a single file.
	Remove(path string) error
	// RemoveAll deletes path and everything beneath it.
	RemoveAll(path string) error
	// Rename moves src to dst.
	Rename(src, dst string) error
}

// Globber matches glob patterns beneath a root directory.
type Globber interface {
	// Glob returns the files beneath root that match pattern, as
	// slash-separated paths relative to root.
	Glob(root, pattern string) ([]string, error)
}

// Locator runs the filesystem-backed operations on ChainablePath values:
// existence checks, searches, globbing and file management. Relative paths
// are resolved against the Locator's Environment before the filesystem is
// touched.
type Locator struct {
	fs      FileSystem
	globber Globber
	env     Environment
	logger  *slog.Logger
}

// NewLocator creates a Locator. Any nil argument is replaced by the OS-backed
// default, and a nil logger discards everything.
func NewLocator(fsys FileSystem, globber Globber, env Environment, logger *slog.Logger) *Locator {
	if fsys == nil {
		fsys = fs.NewFileSystem()
	}
	if globber == nil {
		globber = fs.NewGlobber()
	}
	if env == nil {
		env = fs.NewEnvProvider()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Locator{
		fs:      fsys,
		globber: globber,
		env:     env,
		logger:  logger.With("component", "locator"),
	}
}

// Environment returns the environment the Locator resolves relative paths against.
func (l *Locator) Environment() Environment {
	return l.env
}

// absolute resolves p against the Locator's working directory.
func (l *Locator) absolute(p ChainablePath) (ChainablePath, error) {
	return p.ToAbsoluteOf(l.env)
}

// stat returns nil info for Empty, Null and any path that cannot be stat'ed.
func (l *Locator) stat(p ChainablePath) iofs.FileInfo {
	if p.IsEmpty() || p.IsNull() {
		return nil
	}
	abs, err := l.absolute(p)
	if err != nil {
		return nil
	}
	info, err := l.fs.Stat(abs.String())
	if err != nil {
		return nil
	}
	return info
}

// Stat returns information about the file or directory at p.
func (l *Locator) Stat(p ChainablePath) (iofs.FileInfo, error) {
	abs, err := l.absolute(p)
	if err != nil {
		return nil, err
	}
	return l.fs.Stat(abs.String())
}

// Exists reports whether p refers to an existing file or directory.
func (l *Locator) Exists(p ChainablePath) bool {
	return l.stat(p) != nil
}

// IsFile reports whether p refers to an existing file.
func (l *Locator) IsFile(p ChainablePath) bool {
	info := l.stat(p)
	return info != nil && !info.IsDir()
}

// IsDirectory reports whether p refers to an existing directory.
func (l *Locator) IsDirectory(p ChainablePath) bool {
	info := l.stat(p)
	return info != nil && info.IsDir()
}

// FileExists is an alias for IsFile.
func (l *Locator) FileExists(p ChainablePath) bool {
	return l.IsFile(p)
}

// DirectoryExists is an alias for IsDirectory.
func (l *Locator) DirectoryExists(p ChainablePath) bool {
	return l.IsDirectory(p)
}

// LastWriteTimeUTC returns the modification time of p in UTC, or the zero
// time if p does not exist.
func (l *Locator) LastWriteTimeUTC(p ChainablePath) time.Time {
	info := l.stat(p)
	if info == nil {
		return time.Time{}
	}
	return info.ModTime().UTC()
}
