package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/config"
	"github.com/andyballingall/pathy/internal/report"
	"github.com/andyballingall/pathy/internal/watch"
)

// Manager defines the operations behind pathy's commands.
type Manager interface {
	Config() *config.Config
	Info(p pathy.ChainablePath) report.PathInfo
	FindFirst(candidates []string) (pathy.ChainablePath, error)
	FindParent(start pathy.ChainablePath, wildcards []string) (pathy.ChainablePath, error)
	ProjectRoot(start pathy.ChainablePath) (pathy.ChainablePath, error)
	ResolveFile(p pathy.ChainablePath, fileName string) (pathy.ChainablePath, error)
	Relative(p, base pathy.ChainablePath) (pathy.ChainablePath, error)
	Glob(root pathy.ChainablePath, patterns []string) ([]pathy.ChainablePath, error)
	WatchGlob(ctx context.Context, root pathy.ChainablePath, patterns []string,
		callback func(watch.Event), readyChan chan<- struct{}) error
	MakeDirectory(p pathy.ChainablePath) error
	Delete(paths []pathy.ChainablePath) error
	Move(destination pathy.ChainablePath, paths []pathy.ChainablePath, newName string) error
	Close() error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager stands in for a Manager whose dependencies are only built once
// the command line has been parsed.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner reports whether the inner manager has been set.
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

func (l *LazyManager) Info(p pathy.ChainablePath) report.PathInfo {
	return l.check().Info(p)
}

func (l *LazyManager) FindFirst(candidates []string) (pathy.ChainablePath, error) {
	return l.check().FindFirst(candidates)
}

func (l *LazyManager) FindParent(start pathy.ChainablePath, wildcards []string) (pathy.ChainablePath, error) {
	return l.check().FindParent(start, wildcards)
}

func (l *LazyManager) ProjectRoot(start pathy.ChainablePath) (pathy.ChainablePath, error) {
	return l.check().ProjectRoot(start)
}

func (l *LazyManager) ResolveFile(p pathy.ChainablePath, fileName string) (pathy.ChainablePath, error) {
	return l.check().ResolveFile(p, fileName)
}

func (l *LazyManager) Relative(p, base pathy.ChainablePath) (pathy.ChainablePath, error) {
	return l.check().Relative(p, base)
}

func (l *LazyManager) Glob(root pathy.ChainablePath, patterns []string) ([]pathy.ChainablePath, error) {
	return l.check().Glob(root, patterns)
}

func (l *LazyManager) WatchGlob(ctx context.Context, root pathy.ChainablePath, patterns []string,
	callback func(watch.Event), readyChan chan<- struct{},
) error {
	return l.check().WatchGlob(ctx, root, patterns, callback, readyChan)
}

func (l *LazyManager) MakeDirectory(p pathy.ChainablePath) error {
	return l.check().MakeDirectory(p)
}

func (l *LazyManager) Delete(paths []pathy.ChainablePath) error {
	return l.check().Delete(paths)
}

func (l *LazyManager) Move(destination pathy.ChainablePath, paths []pathy.ChainablePath, newName string) error {
	return l.check().Move(destination, paths, newName)
}

func (l *LazyManager) Close() error {
	if l.inner == nil {
		return nil
	}
	return l.inner.Close()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger    *slog.Logger
	locator   *pathy.Locator
	cfg       *config.Config
	logCloser io.Closer
}

func NewCLIManager(logger *slog.Logger, l *pathy.Locator, cfg *config.Config, logCloser io.Closer) *CLIManager {
	return &CLIManager{
		logger:    logger,
		locator:   l,
		cfg:       cfg,
		logCloser: logCloser,
	}
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

func (m *CLIManager) Info(p pathy.ChainablePath) report.PathInfo {
	m.logger.Debug("describing path", "path", p)
	return report.NewPathInfo(m.locator, p)
}

func (m *CLIManager) FindFirst(candidates []string) (pathy.ChainablePath, error) {
	m.logger.Debug("finding first existing path", "candidates", candidates)
	found, err := m.locator.FindFirstString(candidates...)
	if err != nil {
		return pathy.Empty, err
	}
	if found.IsEmpty() {
		return pathy.Empty, &NotFoundError{What: "none of the candidate paths exist"}
	}
	return found, nil
}

func (m *CLIManager) FindParent(start pathy.ChainablePath, wildcards []string) (pathy.ChainablePath, error) {
	m.logger.Debug("finding parent", "start", start, "wildcards", wildcards)
	dir, err := m.locator.FindParentWithFileMatching(start, wildcards...)
	if err != nil {
		return pathy.Null, err
	}
	if dir.IsNull() {
		return pathy.Null, &NotFoundError{What: "no parent directory contains a matching file"}
	}
	return dir, nil
}

// ProjectRoot finds the closest directory at or above start containing one of
// the configured markers.
func (m *CLIManager) ProjectRoot(start pathy.ChainablePath) (pathy.ChainablePath, error) {
	dir, err := m.locator.FindParentWithFileMatching(start, m.cfg.Markers...)
	if err != nil {
		return pathy.Null, err
	}
	if dir.IsNull() {
		return pathy.Null, &NotFoundError{What: "no project root marker found"}
	}
	m.logger.Debug("found project root", "start", start, "root", dir)
	return dir, nil
}

func (m *CLIManager) ResolveFile(p pathy.ChainablePath, fileName string) (pathy.ChainablePath, error) {
	found, err := m.locator.ResolveFile(p, fileName)
	if err != nil {
		return pathy.Empty, err
	}
	if found.IsEmpty() {
		return pathy.Empty, &NotFoundError{What: "file '" + fileName + "'"}
	}
	return found, nil
}

// Relative expresses p relative to base after resolving both against the
// working directory.
func (m *CLIManager) Relative(p, base pathy.ChainablePath) (pathy.ChainablePath, error) {
	env := m.locator.Environment()
	absPath, err := p.ToAbsoluteOf(env)
	if err != nil {
		return pathy.Empty, err
	}
	absBase, err := base.ToAbsoluteOf(env)
	if err != nil {
		return pathy.Empty, err
	}
	return absPath.AsRelativeTo(absBase)
}

func (m *CLIManager) Glob(root pathy.ChainablePath, patterns []string) ([]pathy.ChainablePath, error) {
	m.logger.Debug("globbing", "root", root, "patterns", patterns)
	return m.locator.GlobFiles(root, patterns...)
}

// WatchGlob re-runs patterns beneath root whenever something changes, until
// ctx is cancelled. A non-nil readyChan is signalled once watching has begun.
func (m *CLIManager) WatchGlob(ctx context.Context, root pathy.ChainablePath, patterns []string,
	callback func(watch.Event), readyChan chan<- struct{},
) error {
	abs, err := root.ToAbsoluteOf(m.locator.Environment())
	if err != nil {
		return err
	}

	w := watch.New(m.locator, abs, patterns, m.cfg.DebounceInterval(), m.logger)
	if readyChan != nil {
		go func() {
			select {
			case <-w.Ready:
				readyChan <- struct{}{}
			case <-ctx.Done():
			}
		}()
	}
	return w.Watch(ctx, callback)
}

func (m *CLIManager) MakeDirectory(p pathy.ChainablePath) error {
	m.logger.Debug("creating directory", "path", p)
	return m.locator.CreateDirectoryRecursively(p)
}

func (m *CLIManager) Delete(paths []pathy.ChainablePath) error {
	m.logger.Debug("deleting", "paths", paths)
	return m.locator.DeleteAll(paths...)
}

// Move moves paths into destination. newName renames the single moved path.
func (m *CLIManager) Move(destination pathy.ChainablePath, paths []pathy.ChainablePath, newName string) error {
	m.logger.Debug("moving", "paths", paths, "destination", destination, "newName", newName)
	if newName == "" {
		return m.locator.MoveAll(destination, paths...)
	}
	if len(paths) != 1 {
		return &RenameManyError{Count: len(paths)}
	}
	return m.locator.MoveFileOrDirectoryAs(paths[0], destination, newName)
}

// Close releases the log file.
func (m *CLIManager) Close() error {
	if m.logCloser == nil {
		return nil
	}
	return m.logCloser.Close()
}
