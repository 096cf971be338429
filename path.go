// Package pathy provides ChainablePath, an immutable path value that can be
// parsed from any string, composed segment by segment and queried for its
// structure, together with search helpers that find files and directories
// relative to it.
//
// Paths are normalised when they are built: separators are unified, the root
// (a drive letter, a UNC share or a leading separator) is detected, and "." and
// ".." segments are resolved. Two paths are equal when their canonical forms
// are equal, so ChainablePath values can be compared with ==.
package pathy

import (
	"slices"
	"strings"
)

// Kind identifies which variant a ChainablePath holds.
type Kind uint8

const (
	// KindEmpty is the empty path. It is also the seed for building paths.
	KindEmpty Kind = iota
	// KindNull marks a search that found nothing.
	KindNull
	// KindRelative is a path that is not anchored to a root.
	KindRelative
	// KindRooted is a path anchored to a drive, a UNC share or a leading separator.
	KindRooted
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNull:
		return "null"
	case KindRelative:
		return "relative"
	case KindRooted:
		return "rooted"
	default:
		return "unknown"
	}
}

// ChainablePath is an immutable, canonical filesystem path.
type ChainablePath struct {
	kind Kind
	raw  string
}

var (
	// Empty is the path with no content.
	Empty = ChainablePath{kind: KindEmpty}
	// Null is returned by searches that did not find anything. It is distinct
	// from Empty.
	Null = ChainablePath{kind: KindNull}
	// New is a synonym for Empty that reads well at the start of a chain:
	//
	//	p := pathy.New.Chain("c:", "temp", "file.txt")
	New = Empty
)

// From parses raw into a ChainablePath.
func From(raw string) (ChainablePath, error) {
	return normalize(raw)
}

// MustFrom is like From but panics if raw is not a valid path.
func MustFrom(raw string) ChainablePath {
	p, err := From(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the variant held by p.
func (p ChainablePath) Kind() Kind { return p.kind }

// IsEmpty reports whether p is the Empty path.
func (p ChainablePath) IsEmpty() bool { return p.kind == KindEmpty }

// IsNull reports whether p is the Null path.
func (p ChainablePath) IsNull() bool { return p.kind == KindNull }

// IsRooted reports whether p is anchored to a root.
func (p ChainablePath) IsRooted() bool { return p.kind == KindRooted }

// Equals reports whether p and other have the same canonical form.
func (p ChainablePath) Equals(other ChainablePath) bool { return p == other }

func (p ChainablePath) String() string { return p.raw }

// parts returns the canonical root (empty for relative paths) and the segments
// following it. The relative path "." has no segments.
func (p ChainablePath) parts() (root string, segments []string) {
	switch p.kind {
	case KindRooted:
		root, rest := splitCanonical(p.raw)
		if rest == "" {
			return root, nil
		}
		return root, strings.Split(rest, separatorString)
	case KindRelative:
		if p.raw == currentSegment {
			return "", nil
		}
		return "", strings.Split(p.raw, separatorString)
	default:
		return "", nil
	}
}

// Segments returns the components of p after its root.
func (p ChainablePath) Segments() []string {
	_, segments := p.parts()
	return segments
}

// Chain appends segments to p. Empty and whitespace-only segments are ignored,
// and any ".." they introduce is resolved against p. Chaining onto Empty starts
// a new path, so a first segment such as "c:" produces a rooted path.
func (p ChainablePath) Chain(segments ...string) ChainablePath {
	result := p
	for _, segment := range segments {
		result = result.chain(segment)
	}
	return result
}

func (p ChainablePath) chain(segment string) ChainablePath {
	if strings.TrimSpace(segment) == "" {
		return p
	}

	if p.kind == KindEmpty || p.kind == KindNull {
		next, err := normalize(segment)
		if err != nil {
			return p
		}
		return next
	}

	segment = strings.TrimLeftFunc(segment, isSeparatorRune)
	if strings.TrimSpace(segment) == "" {
		return p
	}

	joined := p.raw
	if !strings.HasSuffix(joined, separatorString) {
		joined += separatorString
	}

	next, err := normalize(joined + segment)
	if err != nil {
		return p
	}
	return next
}

// withNames appends names read from disk to p. Unlike Chain the names are not
// parsed, so a name holding a character that only separates paths on other
// hosts, such as a backslash on Linux, stays a single segment.
func (p ChainablePath) withNames(names ...string) ChainablePath {
	root, segments := p.parts()
	out := slices.Clone(segments)
	for _, name := range names {
		if name != "" && name != currentSegment {
			out = append(out, name)
		}
	}
	if len(out) == len(segments) {
		return p
	}
	return build(root, out)
}

// ChainPath appends other to p. A rooted other is appended literally rather
// than replacing p. Chaining the Null path is an error.
func (p ChainablePath) ChainPath(other ChainablePath) (ChainablePath, error) {
	if other.kind == KindNull {
		return p, &NullSegmentError{}
	}
	return p.chain(other.raw), nil
}

// Append adds suffix to the final component of p without inserting a
// separator, typically to add an extension.
func (p ChainablePath) Append(suffix string) ChainablePath {
	if suffix == "" {
		return p
	}

	next, err := normalize(p.raw + suffix)
	if err != nil {
		return p
	}
	return next
}

// Root returns the root of a rooted path, or Empty for any other path.
func (p ChainablePath) Root() ChainablePath {
	if p.kind != KindRooted {
		return Empty
	}
	root, _ := p.parts()
	return ChainablePath{kind: KindRooted, raw: root}
}

// Parent returns the directory containing p. A root, a single relative
// segment, Empty and Null have no parent and return Empty.
func (p ChainablePath) Parent() ChainablePath {
	root, segments := p.parts()
	if len(segments) == 0 || (root == "" && len(segments) == 1) {
		return Empty
	}
	return build(root, segments[:len(segments)-1])
}

// Directory is an alias for Parent.
func (p ChainablePath) Directory() ChainablePath {
	return p.Parent()
}

// DirectoryName returns the string form of Parent.
func (p ChainablePath) DirectoryName() string {
	return p.Parent().raw
}

// Name returns the final component of p, including any extension. A root has
// no name.
func (p ChainablePath) Name() string {
	_, segments := p.parts()
	if len(segments) == 0 {
		if p.kind == KindRelative {
			return p.raw
		}
		return ""
	}
	return segments[len(segments)-1]
}

// Extension returns the part of Name from the last dot onwards, or "" if there
// is no dot or the dot is the last character.
func (p ChainablePath) Extension() string {
	name := p.Name()
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// NameWithoutExtension returns Name with Extension removed.
func (p ChainablePath) NameWithoutExtension() string {
	return strings.TrimSuffix(p.Name(), p.Extension())
}

// HasExtension reports whether p has the given extension, ignoring case. Both
// "txt" and ".txt" are accepted.
func (p ChainablePath) HasExtension(extension string) (bool, error) {
	if strings.TrimSpace(extension) == "" {
		return false, &InvalidArgumentError{Argument: "extension", Reason: "the extension must not be null or empty"}
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return strings.EqualFold(p.Extension(), extension), nil
}

// HasName reports whether the final component of p equals name, ignoring case.
func (p ChainablePath) HasName(name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, &InvalidArgumentError{Argument: "name", Reason: "the name must not be null or empty"}
	}
	return strings.EqualFold(p.Name(), name), nil
}

// AsRelativeTo returns the shortest relative path that leads from base to p.
func (p ChainablePath) AsRelativeTo(base ChainablePath) (ChainablePath, error) {
	incompatible := &IncompatiblePathError{Path: p.raw, Base: base.raw}
	if p.kind != base.kind || (p.kind != KindRooted && p.kind != KindRelative) {
		return Empty, incompatible
	}

	pRoot, pSegments := p.parts()
	bRoot, bSegments := base.parts()
	if !sameRoot(pRoot, bRoot) {
		return Empty, incompatible
	}

	shared := 0
	for shared < len(pSegments) && shared < len(bSegments) && pSegments[shared] == bSegments[shared] {
		shared++
	}

	climb := bSegments[shared:]
	relative := make([]string, 0, len(climb)+len(pSegments)-shared)
	for _, s := range climb {
		if s == parentSegment {
			// base starts above the point where p could be reached from.
			return Empty, incompatible
		}
		relative = append(relative, parentSegment)
	}
	relative = append(relative, pSegments[shared:]...)

	return build("", relative), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p ChainablePath) MarshalText() ([]byte, error) {
	return []byte(p.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields Empty.
func (p *ChainablePath) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Empty
		return nil
	}
	parsed, err := From(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
