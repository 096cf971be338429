package pathy

import (
	"fmt"
)

// InvalidPathError is returned when a string cannot be parsed into a path.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("'%s' is not a valid path: it must not be empty or whitespace", e.Path)
}

// NullSegmentError is returned when the Null path is chained onto another path.
type NullSegmentError struct{}

func (e *NullSegmentError) Error() string {
	return "cannot chain a null path segment"
}

// InvalidArgumentError is returned when a required scalar argument, such as an
// extension, a name or an anchor, is missing or malformed.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s (argument '%s')", e.Reason, e.Argument)
}

// ArgumentError is returned when a collection argument is empty or contains
// empty elements.
type ArgumentError struct {
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (argument '%s')", e.Reason, e.Argument)
}

// IncompatiblePathError is returned when one path cannot be expressed relative
// to another, for example because they live under different roots.
type IncompatiblePathError struct {
	Path string
	Base string
}

func (e *IncompatiblePathError) Error() string {
	return fmt.Sprintf("path %s cannot be made relative to %s", e.Path, e.Base)
}
