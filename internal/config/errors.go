package config

import "fmt"

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("configuration file already exists: %s", e.Path)
}

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type InvalidConfigError struct {
	Path    string
	Wrapped error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s is not a valid pathy configuration: %v", e.Path, e.Wrapped)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Wrapped
}

type InvalidDebounceError struct {
	Value   string
	Wrapped error
}

func (e *InvalidDebounceError) Error() string {
	return fmt.Sprintf("debounce '%s' is not a valid duration: %v", e.Value, e.Wrapped)
}

type SchemaError struct {
	Wrapped error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("the configuration schema cannot be compiled: %v", e.Wrapped)
}

func (e *SchemaError) Unwrap() error {
	return e.Wrapped
}
