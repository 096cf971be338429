package pathy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedEnv is an Environment with a fixed working and temp directory.
type fixedEnv struct {
	wd  string
	tmp string
	err error
}

func (e *fixedEnv) Getwd() (string, error) { return e.wd, e.err }

func (e *fixedEnv) TempDir() string { return e.tmp }

// memInfo is the iofs.FileInfo returned by memFS.
type memInfo struct {
	name    string
	dir     bool
	modTime time.Time
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return 0 }
func (i memInfo) ModTime() time.Time { return i.modTime }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }

func (i memInfo) Mode() iofs.FileMode {
	if i.dir {
		return iofs.ModeDir | 0o755
	}
	return 0o644
}

// memFS is an in-memory FileSystem keyed by canonical path strings. Directories
// are implied by the files beneath them.
type memFS struct {
	files    map[string]time.Time
	dirs     map[string]bool
	renamed  [][2]string
	removed  []string
	failWith error
}

func newMemFS(files ...string) *memFS {
	m := &memFS{files: map[string]time.Time{}, dirs: map[string]bool{}}
	for _, f := range files {
		m.addFile(f, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	}
	return m
}

func (m *memFS) addFile(f string, modTime time.Time) {
	p := MustFrom(f)
	m.files[p.String()] = modTime
	for dir := p.Parent(); !dir.IsEmpty(); dir = dir.Parent() {
		m.dirs[dir.String()] = true
	}
}

func (m *memFS) addDir(d string) {
	for dir := MustFrom(d); !dir.IsEmpty(); dir = dir.Parent() {
		m.dirs[dir.String()] = true
	}
}

func (m *memFS) Stat(path string) (iofs.FileInfo, error) {
	p := MustFrom(path)
	if m.dirs[p.String()] {
		return memInfo{name: p.Name(), dir: true}, nil
	}
	if mod, ok := m.files[p.String()]; ok {
		return memInfo{name: p.Name(), modTime: mod}, nil
	}
	return nil, &iofs.PathError{Op: "stat", Path: path, Err: iofs.ErrNotExist}
}

func (m *memFS) ListFiles(dir string) ([]string, error) {
	if !m.dirs[MustFrom(dir).String()] {
		return nil, &iofs.PathError{Op: "readdir", Path: dir, Err: iofs.ErrNotExist}
	}
	var names []string
	for f := range m.files {
		p := MustFrom(f)
		if p.Parent().String() == MustFrom(dir).String() {
			names = append(names, p.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func (m *memFS) MkdirAll(path string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.addDir(path)
	return nil
}

func (m *memFS) Remove(path string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.removed = append(m.removed, path)
	delete(m.files, path)
	return nil
}

func (m *memFS) RemoveAll(path string) error {
	return m.Remove(path)
}

func (m *memFS) Rename(src, dst string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.renamed = append(m.renamed, [2]string{src, dst})
	return nil
}

var errDiskFull = errors.New("disk full")

// writeFiles creates each slash-separated file beneath root with some content.
func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("Hello World!"), 0o600))
	}
}

// tempPath returns a fresh temporary directory as a ChainablePath.
func tempPath(t *testing.T) ChainablePath {
	t.Helper()
	return MustFrom(t.TempDir())
}
