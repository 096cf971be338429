package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/andyballingall/pathy"
)

// JSONReporter writes indented JSON documents, except for WriteChange which
// writes one compact document per line.
type JSONReporter struct{}

type jsonInfo struct {
	Path                 pathy.ChainablePath `json:"path"`
	Kind                 string              `json:"kind"`
	Absolute             pathy.ChainablePath `json:"absolute"`
	Root                 pathy.ChainablePath `json:"root"`
	Parent               pathy.ChainablePath `json:"parent"`
	Name                 string              `json:"name"`
	Extension            string              `json:"extension"`
	NameWithoutExtension string              `json:"nameWithoutExtension"`
	Exists               bool                `json:"exists"`
	IsFile               bool                `json:"isFile"`
	IsDirectory          bool                `json:"isDirectory"`
	LastWriteTimeUTC     string              `json:"lastWriteTimeUtc,omitempty"`
}

type jsonPaths struct {
	Count int                   `json:"count"`
	Paths []pathy.ChainablePath `json:"paths"`
}

type jsonChange struct {
	Trigger pathy.ChainablePath   `json:"trigger"`
	Count   int                   `json:"count"`
	Paths   []pathy.ChainablePath `json:"paths"`
}

func (jr *JSONReporter) WriteInfo(w io.Writer, info PathInfo) error {
	out := jsonInfo{
		Path:                 info.Path,
		Kind:                 info.Kind.String(),
		Absolute:             info.Absolute,
		Root:                 info.Root,
		Parent:               info.Parent,
		Name:                 info.Name,
		Extension:            info.Extension,
		NameWithoutExtension: info.NameWithoutExtension,
		Exists:               info.Exists,
		IsFile:               info.IsFile,
		IsDirectory:          info.IsDirectory,
	}
	if info.Exists {
		out.LastWriteTimeUTC = info.LastWriteTimeUTC.Format(time.RFC3339)
	}
	return encode(w, out, true)
}

func (jr *JSONReporter) WritePath(w io.Writer, p pathy.ChainablePath) error {
	return encode(w, struct {
		Path pathy.ChainablePath `json:"path"`
		Kind string              `json:"kind"`
	}{Path: p, Kind: p.Kind().String()}, true)
}

func (jr *JSONReporter) WritePaths(w io.Writer, paths []pathy.ChainablePath) error {
	return encode(w, jsonPaths{Count: len(paths), Paths: nonNil(paths)}, true)
}

func (jr *JSONReporter) WriteChange(w io.Writer, trigger pathy.ChainablePath, paths []pathy.ChainablePath) error {
	return encode(w, jsonChange{Trigger: trigger, Count: len(paths), Paths: nonNil(paths)}, false)
}

func nonNil(paths []pathy.ChainablePath) []pathy.ChainablePath {
	if paths == nil {
		return []pathy.ChainablePath{}
	}
	return paths
}

func encode(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
