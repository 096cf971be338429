package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andyballingall/pathy"
)

// TextReporter writes human readable output. Path lists are written one per
// line so they can be piped to other tools.
type TextReporter struct {
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldWhite = "\033[1;37m"
)

// cs returns s wrapped in colour c when colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) WriteInfo(w io.Writer, info PathInfo) error {
	status := tr.cs(colRed, "missing")
	switch {
	case info.IsFile:
		status = tr.cs(colGreen, "file")
	case info.IsDirectory:
		status = tr.cs(colGreen, "directory")
	}

	rows := [][2]string{
		{"Path", info.Path.String()},
		{"Kind", info.Kind.String()},
		{"Absolute", info.Absolute.String()},
		{"Root", info.Root.String()},
		{"Parent", info.Parent.String()},
		{"Name", info.Name},
		{"Extension", info.Extension},
		{"Stem", info.NameWithoutExtension},
		{"Status", status},
	}
	if info.Exists {
		rows = append(rows, [2]string{"Modified", info.LastWriteTimeUTC.Format(time.RFC3339)})
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		label := tr.cs(colGrey, r[0]+":"+strings.Repeat(" ", width-len(r[0])))
		if _, err := fmt.Fprintf(w, "%s %s\n", label, tr.cs(colWhite, r[1])); err != nil {
			return err
		}
	}
	return nil
}

func (tr *TextReporter) WritePath(w io.Writer, p pathy.ChainablePath) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

func (tr *TextReporter) WritePaths(w io.Writer, paths []pathy.ChainablePath) error {
	for _, p := range paths {
		if err := tr.WritePath(w, p); err != nil {
			return err
		}
	}
	return nil
}

func (tr *TextReporter) WriteChange(w io.Writer, trigger pathy.ChainablePath, paths []pathy.ChainablePath) error {
	header := fmt.Sprintf("# %s changed: %d matching files", trigger, len(paths))
	if _, err := fmt.Fprintln(w, tr.cs(colBoldWhite, header)); err != nil {
		return err
	}
	return tr.WritePaths(w, paths)
}
