package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/pathy"
	"github.com/andyballingall/pathy/internal/config"
	"github.com/andyballingall/pathy/internal/report"
	"github.com/andyballingall/pathy/internal/watch"
)

type mockEnvProvider struct {
	values map[string]string
	wd     string
	tmp    string
}

func (m *mockEnvProvider) Get(key string) string { return m.values[key] }

func (m *mockEnvProvider) Getwd() (string, error) {
	if m.wd == "" {
		return os.Getwd()
	}
	return m.wd, nil
}

func (m *mockEnvProvider) TempDir() string {
	if m.tmp == "" {
		return os.TempDir()
	}
	return m.tmp
}

// newTestEnv returns an environment rooted in a fresh temporary directory,
// logging into that directory.
func newTestEnv(t *testing.T) *mockEnvProvider {
	t.Helper()
	dir := t.TempDir()
	return &mockEnvProvider{
		values: map[string]string{LogEnvVar: filepath.Join(dir, LogFile)},
		wd:     dir,
		tmp:    dir,
	}
}

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(f), 0o600))
	}
}

// safeBuffer is a bytes.Buffer safe for concurrent use.
type safeBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *safeBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type MockManager struct {
	mock.Mock
	cfg *config.Config
}

func newMockManager() *MockManager {
	return &MockManager{cfg: config.Default()}
}

func (m *MockManager) Config() *config.Config {
	return m.cfg
}

func (m *MockManager) Info(p pathy.ChainablePath) report.PathInfo {
	args := m.Called(p)
	info, _ := args.Get(0).(report.PathInfo)
	return info
}

func (m *MockManager) FindFirst(candidates []string) (pathy.ChainablePath, error) {
	args := m.Called(candidates)
	p, _ := args.Get(0).(pathy.ChainablePath)
	return p, args.Error(1)
}

func (m *MockManager) FindParent(start pathy.ChainablePath, wildcards []string) (pathy.ChainablePath, error) {
	args := m.Called(start, wildcards)
	p, _ := args.Get(0).(pathy.ChainablePath)
	return p, args.Error(1)
}

func (m *MockManager) ProjectRoot(start pathy.ChainablePath) (pathy.ChainablePath, error) {
	args := m.Called(start)
	p, _ := args.Get(0).(pathy.ChainablePath)
	return p, args.Error(1)
}

func (m *MockManager) ResolveFile(p pathy.ChainablePath, fileName string) (pathy.ChainablePath, error) {
	args := m.Called(p, fileName)
	found, _ := args.Get(0).(pathy.ChainablePath)
	return found, args.Error(1)
}

func (m *MockManager) Relative(p, base pathy.ChainablePath) (pathy.ChainablePath, error) {
	args := m.Called(p, base)
	rel, _ := args.Get(0).(pathy.ChainablePath)
	return rel, args.Error(1)
}

func (m *MockManager) Glob(root pathy.ChainablePath, patterns []string) ([]pathy.ChainablePath, error) {
	args := m.Called(root, patterns)
	files, _ := args.Get(0).([]pathy.ChainablePath)
	return files, args.Error(1)
}

func (m *MockManager) WatchGlob(ctx context.Context, root pathy.ChainablePath, patterns []string,
	callback func(watch.Event), readyChan chan<- struct{},
) error {
	args := m.Called(ctx, root, patterns, callback, readyChan)
	return args.Error(0)
}

func (m *MockManager) MakeDirectory(p pathy.ChainablePath) error {
	return m.Called(p).Error(0)
}

func (m *MockManager) Delete(paths []pathy.ChainablePath) error {
	return m.Called(paths).Error(0)
}

func (m *MockManager) Move(destination pathy.ChainablePath, paths []pathy.ChainablePath, newName string) error {
	return m.Called(destination, paths, newName).Error(0)
}

func (m *MockManager) Close() error {
	return nil
}
