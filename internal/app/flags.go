package app

import (
	"errors"

	"github.com/andyballingall/pathy"
)

// formatValue is a pflag.Value accepting the output formats.
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if v != "json" && v != "text" {
		return errors.New("must be 'text' or 'json'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// pathValue is a pflag.Value that parses its argument as a ChainablePath.
// Unset, it holds Empty.
type pathValue struct {
	p pathy.ChainablePath
}

func (v *pathValue) String() string {
	return v.p.String()
}

func (v *pathValue) Set(s string) error {
	p, err := pathy.From(s)
	if err != nil {
		return err
	}
	v.p = p
	return nil
}

func (v *pathValue) Type() string {
	return "<path>"
}

// Path returns the parsed path, or def when the flag was not set.
func (v *pathValue) Path(def pathy.ChainablePath) pathy.ChainablePath {
	if v.p.IsEmpty() {
		return def
	}
	return v.p
}
