package fs

import (
	"os"
)

// EnvProvider provides access to the process environment.
type EnvProvider interface {
	// Get returns the value of the environment variable named by the key.
	Get(key string) string
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// TempDir returns the directory used for temporary files.
	TempDir() string
}

// OSEnvProvider reads from the actual process environment.
type OSEnvProvider struct{}

// NewEnvProvider creates a new OSEnvProvider.
func NewEnvProvider() *OSEnvProvider {
	return &OSEnvProvider{}
}

// Get returns the value of the environment variable named by the key.
func (e *OSEnvProvider) Get(key string) string {
	return os.Getenv(key)
}

// Getwd returns the current working directory.
func (e *OSEnvProvider) Getwd() (string, error) {
	return os.Getwd()
}

// TempDir returns the directory used for temporary files.
func (e *OSEnvProvider) TempDir() string {
	return os.TempDir()
}
