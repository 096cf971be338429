package pathy

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slash = string(Separator)

// native converts a slash-separated expectation to the host separator.
func native(s string) string {
	return strings.ReplaceAll(s, "/", slash)
}

func TestFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		want       string
		wantKind   Kind
		wantRooted bool
	}{
		{
			name:       "absolute path",
			input:      "/usr/local/bin",
			want:       native("/usr/local/bin"),
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:     "relative path",
			input:    "temp/somefile.txt",
			want:     native("temp/somefile.txt"),
			wantKind: KindRelative,
		},
		{
			name:     "backslashes are separators",
			input:    `temp\nested\somefile.txt`,
			want:     native("temp/nested/somefile.txt"),
			wantKind: KindRelative,
		},
		{
			name:       "trailing slash is removed",
			input:      "/usr/local/",
			want:       native("/usr/local"),
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:       "duplicate separators collapse",
			input:      "/usr//local///bin",
			want:       native("/usr/local/bin"),
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:       "reverse traversals are resolved",
			input:      "/tmp/dir1/dir2/dir3/../../..",
			want:       native("/tmp"),
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:       "traversals above the root are clamped",
			input:      "/tmp/../../..",
			want:       slash,
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:     "current directory segments are dropped",
			input:    "./a/./b/.",
			want:     native("a/b"),
			wantKind: KindRelative,
		},
		{
			name:     "leading traversals of a relative path are kept",
			input:    "../a/./b/..",
			want:     native("../a"),
			wantKind: KindRelative,
		},
		{
			name:     "relative path that cancels out",
			input:    "a/..",
			want:     ".",
			wantKind: KindRelative,
		},
		{
			name:     "whitespace segments are dropped",
			input:    "a/ /b",
			want:     native("a/b"),
			wantKind: KindRelative,
		},
		{
			name:       "bare drive letter",
			input:      "C:",
			want:       "C:" + slash,
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:       "drive letter with backslashes",
			input:      `C:\temp\`,
			want:       native("C:/temp"),
			wantKind:   KindRooted,
			wantRooted: true,
		},
		{
			name:       "drive letter traversal is clamped",
			input:      "c:/temp/../..",
			want:       "c:" + slash,
			wantKind:   KindRooted,
			wantRooted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := From(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
			assert.Equal(t, tt.wantKind, p.Kind())
			assert.Equal(t, tt.wantRooted, p.IsRooted())
		})
	}
}

func TestFromLeadingDoubleSeparator(t *testing.T) {
	t.Parallel()

	type row struct {
		input string
		want  string
	}
	tests := []row{
		{input: "//tmp/a", want: "/tmp/a"},
		{input: "///tmp//a/", want: "/tmp/a"},
		{input: `\\server\share\dir\file.txt`, want: "/server/share/dir/file.txt"},
		{input: "//server/share", want: "/server/share"},
		{input: "//", want: "/"},
	}
	if uncRoots {
		tests = []row{
			{input: "//tmp/a", want: "//tmp/a/"},
			{input: `\\server\share\dir\file.txt`, want: "//server/share/dir/file.txt"},
			{input: "//server/share", want: "//server/share/"},
			{input: "//", want: "/"},
		}
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			p, err := From(tt.input)
			require.NoError(t, err)
			assert.Equal(t, native(tt.want), p.String())
			assert.True(t, p.IsRooted())
		})
	}
}

func TestDoubleSeparatorIsTheOrdinaryRootOffWindows(t *testing.T) {
	t.Parallel()
	if uncRoots {
		t.Skip("a leading double separator is a UNC root on this host")
	}

	base := tempPath(t)
	writeFiles(t, base.String(), "project.sln", "w/src/main.go")
	doubled := MustFrom("/" + base.String() + "/w/src")

	assert.Equal(t, base.Chain("w", "src"), doubled)
	assert.Equal(t, MustFrom("/"), doubled.Root())

	found, err := FindParentWithFileMatching(doubled, "*.sln")
	require.NoError(t, err)
	assert.Equal(t, base, found)
}

func TestFromInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\t"} {
		t.Run("'"+input+"'", func(t *testing.T) {
			t.Parallel()
			_, err := From(input)
			var pathErr *InvalidPathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, input, pathErr.Path)
		})
	}

	assert.Panics(t, func() { MustFrom("") })
}

func TestDriveLettersShareACanonicalForm(t *testing.T) {
	t.Parallel()

	for _, drive := range []string{"C:", "C:/", "c:/", `C:\`} {
		t.Run(drive, func(t *testing.T) {
			t.Parallel()
			p := MustFrom(drive)
			assert.True(t, strings.EqualFold("C:"+slash, p.String()), "got %s", p)
			assert.True(t, p.IsRooted())
		})
	}
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	assert.True(t, Empty.IsEmpty())
	assert.False(t, Empty.IsNull())
	assert.True(t, Null.IsNull())
	assert.False(t, Null.IsEmpty())
	assert.False(t, Empty.Equals(Null))
	assert.NotEqual(t, Empty, Null)
	assert.Equal(t, Empty, New)
	assert.Empty(t, Null.String())
	assert.Empty(t, Empty.String())
	assert.Equal(t, "null", Null.Kind().String())
	assert.Equal(t, "empty", Empty.Kind().String())
	assert.Equal(t, "relative", MustFrom("a").Kind().String())
	assert.Equal(t, "rooted", MustFrom("/a").Kind().String())
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, MustFrom("/a/b").Equals(MustFrom("/a//b/")))
	assert.True(t, MustFrom("/a/b") == MustFrom(`\a\b`))
	assert.False(t, MustFrom("/a/B").Equals(MustFrom("/a/b")), "equality is case-sensitive")
	assert.False(t, MustFrom("a").Equals(MustFrom("/a")))
}

func TestChain(t *testing.T) {
	t.Parallel()

	base := MustFrom("/tmp/specs")

	tests := []struct {
		name     string
		base     ChainablePath
		segments []string
		want     string
	}{
		{
			name:     "multiple directories",
			base:     base,
			segments: []string{"dir1", "dir2", "dir3"},
			want:     native("/tmp/specs/dir1/dir2/dir3"),
		},
		{
			name:     "superfluous slashes",
			base:     base,
			segments: []string{"dir1", "dir2/", "dir3/", "file.txt"},
			want:     native("/tmp/specs/dir1/dir2/dir3/file.txt"),
		},
		{
			name:     "leading slash on a segment",
			base:     base,
			segments: []string{"/dir1"},
			want:     native("/tmp/specs/dir1"),
		},
		{
			name:     "reverse traversal",
			base:     base,
			segments: []string{"..", "other"},
			want:     native("/tmp/other"),
		},
		{
			name:     "traversal past the root",
			base:     base,
			segments: []string{"../../../../x"},
			want:     native("/x"),
		},
		{
			name:     "empty and whitespace segments",
			base:     base,
			segments: []string{"", "  ", "/"},
			want:     native("/tmp/specs"),
		},
		{
			name:     "onto the root",
			base:     MustFrom("/"),
			segments: []string{"etc"},
			want:     native("/etc"),
		},
		{
			name:     "onto a drive root",
			base:     MustFrom("D:"),
			segments: []string{"data", "file.bin"},
			want:     native("D:/data/file.bin"),
		},
		{
			name:     "relative onto relative",
			base:     MustFrom("a/b"),
			segments: []string{"c"},
			want:     native("a/b/c"),
		},
		{
			name:     "starting from New with a drive letter",
			base:     New,
			segments: []string{"c:", "temp", "somefile.txt"},
			want:     native("c:/temp/somefile.txt"),
		},
		{
			name:     "starting from Empty with a relative segment",
			base:     Empty,
			segments: []string{"a", "b"},
			want:     native("a/b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.base.Chain(tt.segments...).String())
		})
	}

	t.Run("relative stays relative", func(t *testing.T) {
		t.Parallel()
		assert.False(t, MustFrom("a").Chain("b").IsRooted())
	})

	t.Run("New with a drive letter is rooted", func(t *testing.T) {
		t.Parallel()
		assert.True(t, New.Chain("c:", "temp").IsRooted())
	})
}

func TestChainProperties(t *testing.T) {
	t.Parallel()

	bases := []ChainablePath{MustFrom("/tmp"), MustFrom("rel/dir"), MustFrom("C:"), Empty}

	for _, p := range bases {
		t.Run(p.String(), func(t *testing.T) {
			t.Parallel()

			// Chaining is associative.
			left := p.Chain("a").Chain("b")
			right, err := p.ChainPath(New.Chain("a/b"))
			require.NoError(t, err)
			assert.Equal(t, left, right)

			// The empty segment is an identity.
			assert.Equal(t, p, p.Chain(""))
			same, err := p.ChainPath(Empty)
			require.NoError(t, err)
			assert.Equal(t, p, same)

			// Chaining Null is rejected.
			_, err = p.ChainPath(Null)
			var nullErr *NullSegmentError
			assert.ErrorAs(t, err, &nullErr)
		})
	}
}

func TestChainPath(t *testing.T) {
	t.Parallel()

	t.Run("relative onto absolute", func(t *testing.T) {
		t.Parallel()
		result, err := MustFrom("/tmp/specs").ChainPath(MustFrom("dir1").Chain("somefile.txt"))
		require.NoError(t, err)
		assert.Equal(t, native("/tmp/specs/dir1/somefile.txt"), result.String())
	})

	t.Run("rooted other is appended literally", func(t *testing.T) {
		t.Parallel()
		result, err := MustFrom("/tmp").ChainPath(MustFrom("/x/y"))
		require.NoError(t, err)
		assert.Equal(t, native("/tmp/x/y"), result.String())
	})
}

func TestParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  ChainablePath
	}{
		{input: "/tmp/dir1/dir2", want: MustFrom("/tmp/dir1")},
		{input: "/tmp", want: MustFrom("/")},
		{input: "/", want: Empty},
		{input: "C://", want: Empty},
		{input: `C:\temp\`, want: MustFrom("C:")},
		{input: "C:/temp", want: MustFrom("C:")},
		{input: "//server/share/dir", want: MustFrom("//server/share")},
		{input: "temp/somefile.txt", want: MustFrom("temp")},
		{input: "somefile.txt", want: Empty},
		{input: "../..", want: MustFrom("..")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			p := MustFrom(tt.input)
			assert.Equal(t, tt.want, p.Parent())
			assert.Equal(t, tt.want, p.Directory())
			assert.Equal(t, tt.want.String(), p.DirectoryName())
		})
	}

	assert.Equal(t, Empty, Empty.Parent())
	assert.Equal(t, Empty, Null.Parent())
}

func TestRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slash, MustFrom("/tmp/dir").Root().String())
	assert.Equal(t, "C:"+slash, MustFrom("C:/temp/x").Root().String())
	if uncRoots {
		assert.Equal(t, native("//server/share/"), MustFrom(`\\server\share\x`).Root().String())
		assert.Equal(t, Empty, MustFrom("//server/share").Parent())
	} else {
		assert.Equal(t, slash, MustFrom(`\\server\share\x`).Root().String())
		assert.Equal(t, MustFrom("/server"), MustFrom("//server/share").Parent())
	}
	assert.Equal(t, Empty, MustFrom("a/b").Root())
	assert.Equal(t, Empty, Null.Root())
	assert.True(t, MustFrom("/tmp").Root().IsRooted())
}

func TestNameAndExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input         string
		wantName      string
		wantExtension string
		wantStem      string
	}{
		{input: "/tmp/file.txt", wantName: "file.txt", wantExtension: ".txt", wantStem: "file"},
		{input: "/tmp/archive.tar.gz", wantName: "archive.tar.gz", wantExtension: ".gz", wantStem: "archive.tar"},
		{input: "/tmp/Pathy.Specs", wantName: "Pathy.Specs", wantExtension: ".Specs", wantStem: "Pathy"},
		{input: "/tmp/.bashrc", wantName: ".bashrc", wantExtension: ".bashrc", wantStem: ""},
		{input: "/tmp/trailing.", wantName: "trailing.", wantExtension: "", wantStem: "trailing."},
		{input: "/tmp/noext", wantName: "noext", wantExtension: "", wantStem: "noext"},
		{input: "/tmp/dir3", wantName: "dir3", wantExtension: "", wantStem: "dir3"},
		{input: "..", wantName: "..", wantExtension: "", wantStem: ".."},
		{input: ".", wantName: ".", wantExtension: "", wantStem: "."},
		{input: "/", wantName: "", wantExtension: "", wantStem: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			p := MustFrom(tt.input)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantExtension, p.Extension())
			assert.Equal(t, tt.wantStem, p.NameWithoutExtension())
		})
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	path := MustFrom("/tmp/SomeFile.txt")

	tests := []struct {
		extension string
		want      bool
	}{
		{".txt", true},
		{".TXT", true},
		{"TXT", true},
		{"txt", true},
		{"DOC", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			t.Parallel()
			got, err := path.HasExtension(tt.extension)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("requires an extension", func(t *testing.T) {
		t.Parallel()
		_, err := path.HasExtension("")
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "extension", argErr.Argument)
		assert.Contains(t, err.Error(), "null or empty")
	})
}

func TestHasName(t *testing.T) {
	t.Parallel()

	path := MustFrom("/tmp/SomeFile.txt")

	got, err := path.HasName("somefile.TXT")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = path.HasName("SomeFile")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = path.HasName(" ")
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "name", argErr.Argument)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	p := MustFrom("/tmp/SomeFile").Append(".txt")
	assert.Equal(t, "SomeFile.txt", p.Name())
	assert.Equal(t, ".txt", p.Extension())

	assert.Equal(t, native("/tmp/SomeFile_backup"), MustFrom("/tmp/SomeFile").Append("_backup").String())
	assert.Equal(t, MustFrom("/tmp/a"), MustFrom("/tmp/a").Append(""))
	assert.Equal(t, ".txt", Empty.Append(".txt").String())
}

func TestAsRelativeTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{name: "child", path: "/a/b/SomeRandomFileOrDirectory", base: "/a/b", want: "SomeRandomFileOrDirectory"},
		{name: "parent", path: "/a/b", base: "/a/b/SomeRandomFileOrDirectory", want: ".."},
		{name: "sibling tree", path: "/a/b/c", base: "/a/d/e", want: "../../b/c"},
		{name: "same path", path: "/a/b", base: "/a/b", want: "."},
		{name: "from the root", path: "/a/b", base: "/", want: "a/b"},
		{name: "drive letters ignore case", path: "C:/x/y", base: "c:/x", want: "y"},
		{name: "relative paths", path: "a/b", base: "a/c", want: "../b"},
		{name: "relative with leading traversal", path: "../a", base: "b", want: "../../a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := MustFrom(tt.path).AsRelativeTo(MustFrom(tt.base))
			require.NoError(t, err)
			assert.Equal(t, native(tt.want), got.String())
			assert.False(t, got.IsRooted())
		})
	}

	incompatible := []struct {
		name string
		path ChainablePath
		base ChainablePath
	}{
		{name: "different drives", path: MustFrom("C:/x"), base: MustFrom("D:/x")},
		{name: "rooted and relative", path: MustFrom("/x"), base: MustFrom("x")},
		{name: "relative base above target", path: MustFrom("x"), base: MustFrom("../y")},
		{name: "null path", path: Null, base: MustFrom("/x")},
		{name: "empty base", path: MustFrom("/x"), base: Empty},
	}

	for _, tt := range incompatible {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.path.AsRelativeTo(tt.base)
			var relErr *IncompatiblePathError
			require.ErrorAs(t, err, &relErr)
			assert.Equal(t, tt.base.String(), relErr.Base)
		})
	}
}

func TestAsRelativeToDirectoryKeepsName(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"/tmp/dir/file.txt", "/file", "C:/temp/x.cs", "a/b/c", "//server/share/f"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			p := MustFrom(input)
			rel, err := p.AsRelativeTo(p.Directory())
			require.NoError(t, err)
			assert.Equal(t, p.Name(), rel.Name())
		})
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"tmp", "dir"}, MustFrom("/tmp/dir").Segments())
	assert.Equal(t, []string{"..", "a"}, MustFrom("../a").Segments())
	assert.Nil(t, MustFrom("/").Segments())
	assert.Nil(t, MustFrom(".").Segments())
	assert.Nil(t, Null.Segments())
}

func TestTextMarshalling(t *testing.T) {
	t.Parallel()

	type doc struct {
		Path ChainablePath `json:"path"`
	}

	data, err := json.Marshal(doc{Path: MustFrom("/tmp//x/")})
	require.NoError(t, err)

	var decoded doc
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, MustFrom("/tmp/x"), decoded.Path)

	require.NoError(t, json.Unmarshal([]byte(`{"path":""}`), &decoded))
	assert.Equal(t, Empty, decoded.Path)

	require.Error(t, json.Unmarshal([]byte(`{"path":"   "}`), &decoded))
}

func TestSeparatorMatchesHost(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Separator, Separator)
}
