package pathy

import (
	"path/filepath"
	"strings"
)

// Separator is the canonical separator used in every ChainablePath.
const Separator = filepath.Separator

var separatorString = string(Separator)

// uncRoots reports whether a leading double separator introduces a
// \\server\share\ root. Elsewhere it is the ordinary root.
const uncRoots = Separator == '\\'

const (
	currentSegment = "."
	parentSegment  = ".."
)

// isSeparator reports whether c is recognised as a path separator. Both forward
// and backward slashes are accepted regardless of the host so that paths
// written for either convention parse to the same canonical form.
func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func isSeparatorRune(r rune) bool {
	return r == '/' || r == '\\'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// normalize parses raw into its canonical form.
func normalize(raw string) (ChainablePath, error) {
	if strings.TrimSpace(raw) == "" {
		return Empty, &InvalidPathError{Path: raw}
	}

	root, rest := splitRoot(raw)
	return build(root, cleanSegments(rest, root != "")), nil
}

// splitRoot separates the root of raw from the remainder. The returned root is
// already canonical and ends with exactly one separator, or is empty when raw
// is relative.
func splitRoot(raw string) (root, rest string) {
	switch {
	case raw == "":
		return "", ""
	case len(raw) >= 2 && isDriveLetter(raw[0]) && raw[1] == ':':
		// C:, C:/ and C:\ all share the same root. Drive-relative forms such
		// as C:temp are anchored at the drive root.
		return raw[:2] + separatorString, raw[2:]
	case uncRoots && len(raw) >= 2 && isSeparator(raw[0]) && isSeparator(raw[1]):
		return splitUNCRoot(strings.TrimLeftFunc(raw, isSeparatorRune))
	case isSeparator(raw[0]):
		return separatorString, strings.TrimLeftFunc(raw, isSeparatorRune)
	default:
		return "", raw
	}
}

// splitUNCRoot builds a \\server\share\ root from the text following the
// leading double separator.
func splitUNCRoot(unc string) (root, rest string) {
	server, rest := cutSegment(unc)
	if server == "" {
		return separatorString, ""
	}

	root = separatorString + separatorString + server + separatorString
	share, rest := cutSegment(rest)
	if share == "" {
		return root, ""
	}
	return root + share + separatorString, rest
}

// splitCanonical separates the root of an already canonical rooted string from
// its segments. Segment text is never parsed for separators other than the
// canonical one.
func splitCanonical(raw string) (root, rest string) {
	n := 1
	switch {
	case len(raw) >= 2 && isDriveLetter(raw[0]) && raw[1] == ':':
		n = 3
	case uncRoots && len(raw) >= 2 && raw[0] == Separator && raw[1] == Separator:
		r, _ := splitUNCRoot(raw[2:])
		n = len(r)
	}
	n = min(n, len(raw))
	return raw[:n], raw[n:]
}

// cutSegment returns the first segment of s and everything after the separator
// that ends it.
func cutSegment(s string) (segment, rest string) {
	i := strings.IndexFunc(s, isSeparatorRune)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// cleanSegments splits rest into segments, dropping empty, whitespace-only and
// "." segments and resolving "..". Above a root, ".." is clamped; in a relative
// path it is kept when there is nothing left to pop.
func cleanSegments(rest string, rooted bool) []string {
	var out []string
	for _, s := range strings.FieldsFunc(rest, isSeparatorRune) {
		switch {
		case strings.TrimSpace(s) == "", s == currentSegment:
			continue
		case s == parentSegment:
			if n := len(out); n > 0 && out[n-1] != parentSegment {
				out = out[:n-1]
				continue
			}
			if !rooted {
				out = append(out, parentSegment)
			}
		default:
			out = append(out, s)
		}
	}
	return out
}

// build assembles a canonical path from an already-canonical root and clean
// segments.
func build(root string, segments []string) ChainablePath {
	if root != "" {
		return ChainablePath{kind: KindRooted, raw: root + strings.Join(segments, separatorString)}
	}
	if len(segments) == 0 {
		return ChainablePath{kind: KindRelative, raw: currentSegment}
	}
	return ChainablePath{kind: KindRelative, raw: strings.Join(segments, separatorString)}
}

// sameRoot compares two canonical roots. Drive letters and UNC server names are
// not case-sensitive.
func sameRoot(a, b string) bool {
	return strings.EqualFold(a, b)
}
