// Package report renders pathy results as text or JSON.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/andyballingall/pathy"
)

// Reporter writes command results in a particular output format.
type Reporter interface {
	// WriteInfo writes a description of a single path.
	WriteInfo(w io.Writer, info PathInfo) error
	// WritePath writes a single path result.
	WritePath(w io.Writer, p pathy.ChainablePath) error
	// WritePaths writes a list of paths.
	WritePaths(w io.Writer, paths []pathy.ChainablePath) error
	// WriteChange writes the result of a rescan triggered by a change to trigger.
	WriteChange(w io.Writer, trigger pathy.ChainablePath, paths []pathy.ChainablePath) error
}

// PathInfo describes a path and, when it exists, what it refers to.
type PathInfo struct {
	Path                 pathy.ChainablePath
	Kind                 pathy.Kind
	Absolute             pathy.ChainablePath
	Root                 pathy.ChainablePath
	Parent               pathy.ChainablePath
	Name                 string
	Extension            string
	NameWithoutExtension string
	Exists               bool
	IsFile               bool
	IsDirectory          bool
	LastWriteTimeUTC     time.Time
}

// NewPathInfo gathers the PathInfo for p using l for filesystem queries.
func NewPathInfo(l *pathy.Locator, p pathy.ChainablePath) PathInfo {
	info := PathInfo{
		Path:                 p,
		Kind:                 p.Kind(),
		Root:                 p.Root(),
		Parent:               p.Parent(),
		Name:                 p.Name(),
		Extension:            p.Extension(),
		NameWithoutExtension: p.NameWithoutExtension(),
		Exists:               l.Exists(p),
		IsFile:               l.IsFile(p),
		IsDirectory:          l.IsDirectory(p),
		LastWriteTimeUTC:     l.LastWriteTimeUTC(p),
	}
	if abs, err := p.ToAbsoluteOf(l.Environment()); err == nil {
		info.Absolute = abs
	}
	return info
}

// New returns the Reporter for format, which is "text" or "json".
func New(format string, useColour bool) (Reporter, error) {
	switch format {
	case "text", "":
		return &TextReporter{UseColour: useColour}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, &UnknownFormatError{Format: format}
	}
}

type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format '%s': must be text or json", e.Format)
}
