package pathy

import (
	"fmt"
	"strings"
)

// CreateDirectoryRecursively creates the directory p and any missing parents.
func (l *Locator) CreateDirectoryRecursively(p ChainablePath) error {
	abs, err := l.absolute(p)
	if err != nil {
		return err
	}
	if err := l.fs.MkdirAll(abs.String()); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", abs, err)
	}
	return nil
}

// DeleteFileOrDirectory deletes the file at p, or the directory at p together
// with its contents. Nothing happens if p does not exist.
func (l *Locator) DeleteFileOrDirectory(p ChainablePath) error {
	info := l.stat(p)
	if info == nil {
		return nil
	}

	abs, err := l.absolute(p)
	if err != nil {
		return err
	}

	if info.IsDir() {
		err = l.fs.RemoveAll(abs.String())
	} else {
		err = l.fs.Remove(abs.String())
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", abs, err)
	}
	l.logger.Debug("deleted", "path", abs)
	return nil
}

// DeleteAll deletes each of paths in turn, stopping at the first failure.
func (l *Locator) DeleteAll(paths ...ChainablePath) error {
	for _, p := range paths {
		if err := l.DeleteFileOrDirectory(p); err != nil {
			return err
		}
	}
	return nil
}

// MoveFileOrDirectory moves the file or directory at src into the directory
// destination, keeping its name.
func (l *Locator) MoveFileOrDirectory(src, destination ChainablePath) error {
	return l.move(src, destination, src.Name())
}

// MoveFileOrDirectoryAs moves the file or directory at src into the directory
// destination under newName.
func (l *Locator) MoveFileOrDirectoryAs(src, destination ChainablePath, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return &InvalidArgumentError{Argument: "newName", Reason: "Renaming requires a valid name"}
	}
	return l.move(src, destination, newName)
}

// MoveAll moves each of paths into destination, keeping their names and
// stopping at the first failure.
func (l *Locator) MoveAll(destination ChainablePath, paths ...ChainablePath) error {
	for _, p := range paths {
		if err := l.MoveFileOrDirectory(p, destination); err != nil {
			return err
		}
	}
	return nil
}

func (l *Locator) move(src, destination ChainablePath, name string) error {
	from, err := l.absolute(src)
	if err != nil {
		return err
	}
	dir, err := l.absolute(destination)
	if err != nil {
		return err
	}

	to := dir.Chain(name)
	if err := l.fs.Rename(from.String(), to.String()); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", from, to, err)
	}
	l.logger.Debug("moved", "from", from, "to", to)
	return nil
}
