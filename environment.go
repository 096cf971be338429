package pathy

import (
	"fmt"
	"strings"

	"github.com/andyballingall/pathy/internal/fs"
)

// Environment supplies the process-wide locations that relative paths are
// resolved against. Each call reads the current state; nothing is cached.
type Environment interface {
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// TempDir returns the directory used for temporary files.
	TempDir() string
}

// defaultEnvironment reads the real process environment.
var defaultEnvironment Environment = fs.NewEnvProvider()

// Current returns the current working directory of the process.
func Current() (ChainablePath, error) {
	return CurrentOf(defaultEnvironment)
}

// CurrentOf returns the working directory reported by env.
func CurrentOf(env Environment) (ChainablePath, error) {
	wd, err := env.Getwd()
	if err != nil {
		return Empty, fmt.Errorf("failed to determine the working directory: %w", err)
	}
	return From(wd)
}

// Temp returns the temporary directory of the process.
func Temp() ChainablePath {
	return TempOf(defaultEnvironment)
}

// TempOf returns the temporary directory reported by env, or Empty if env does
// not report one.
func TempOf(env Environment) ChainablePath {
	p, err := From(env.TempDir())
	if err != nil {
		return Empty
	}
	return p
}

// ToAbsolute resolves a relative p against the current working directory.
// Rooted paths are returned unchanged.
func (p ChainablePath) ToAbsolute() (ChainablePath, error) {
	return p.ToAbsoluteOf(defaultEnvironment)
}

// ToAbsoluteOf resolves a relative p against the working directory of env.
func (p ChainablePath) ToAbsoluteOf(env Environment) (ChainablePath, error) {
	if p.kind == KindRooted {
		return p, nil
	}
	if p.kind == KindNull {
		return p, &InvalidArgumentError{Argument: "path", Reason: "the null path cannot be made absolute"}
	}

	wd, err := CurrentOf(env)
	if err != nil {
		return Empty, err
	}
	return wd.chain(p.raw), nil
}

// ToAbsoluteFrom resolves a relative p against anchor. A relative anchor is
// itself resolved against the current working directory first.
func (p ChainablePath) ToAbsoluteFrom(anchor string) (ChainablePath, error) {
	return p.ToAbsoluteFromOf(anchor, defaultEnvironment)
}

// ToAbsoluteFromOf is ToAbsoluteFrom with a relative anchor resolved against
// the working directory of env.
func (p ChainablePath) ToAbsoluteFromOf(anchor string, env Environment) (ChainablePath, error) {
	if strings.TrimSpace(anchor) == "" {
		return Empty, &InvalidArgumentError{Argument: "absolutePath", Reason: "the anchor must not be null or empty"}
	}
	if p.kind == KindRooted {
		return p, nil
	}
	if p.kind == KindNull {
		return p, &InvalidArgumentError{Argument: "path", Reason: "the null path cannot be made absolute"}
	}

	base, err := From(anchor)
	if err != nil {
		return Empty, err
	}
	if base, err = base.ToAbsoluteOf(env); err != nil {
		return Empty, err
	}
	return base.chain(p.raw), nil
}
