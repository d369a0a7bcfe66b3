package section

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Directory(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, "foo.txt", "# foo\n\nf1\nf2\n")
	writeFixture(t, in, "bar.txt", "# bar\n\nb1\nb2\n")
	writeFixture(t, in, "ignored.md", "# ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(in, "sub.txt"), 0o755))
	out := filepath.Join(t.TempDir(), "all.txt")

	res, err := Compose([]string{in}, out, Options{})
	require.NoError(t, err)
	assert.Len(t, res.Sections, 2)
	assert.Equal(t, "# bar\n\nb1\nb2\n\n# foo\n\nf1\nf2\n\n", readFixture(t, out))
}

func TestCompose_ExplicitFilesKeepOrder(t *testing.T) {
	in := t.TempDir()
	foo := writeFixture(t, in, "foo.md", "# foo\nf 1\nf 2\n")
	bar := writeFixture(t, in, "bar.md", "# bar\nb 1\nb 2\n")
	out := filepath.Join(t.TempDir(), "test.md")

	_, err := Compose([]string{foo, bar}, out, Options{Ext: ".md"})
	require.NoError(t, err)
	assert.Equal(t, "# foo\n\nf 1\nf 2\n\n# bar\n\nb 1\nb 2\n\n", readFixture(t, out))
}

func TestCompose_FileWithoutMarkerUsesFilename(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, "notes.txt", "\nplain text\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	_, err := Compose([]string{in}, out, Options{Marker: DashMarker})
	require.NoError(t, err)
	assert.Equal(t, "---- notes.txt\n\nplain text\n\n", readFixture(t, out))
}

func TestCompose_KeepsMarkerOfEachFile(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, "a.txt", "---- a\n\nalpha\n")
	writeFixture(t, in, "b.txt", "# b\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	_, err := Compose([]string{in}, out, Options{})
	require.NoError(t, err)
	assert.Equal(t, "---- a\n\nalpha\n\n# b\n\n", readFixture(t, out))
}

func TestCompose_EmptyDoesNotTruncate(t *testing.T) {
	in := t.TempDir()
	out := writeFixture(t, t.TempDir(), "existing.txt", "keep me\n")

	res, err := Compose([]string{in}, out, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Sections)
	assert.Equal(t, "keep me\n", readFixture(t, out))
}

func TestCompose_EmptyDoesNotCreate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "new.txt")

	_, err := Compose([]string{t.TempDir()}, out, Options{})
	require.NoError(t, err)
	assert.NoFileExists(t, out)
}

func TestCompose_Stdout(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, "bar.txt", "# bar\n\nb\n")
	var buf bytes.Buffer

	_, err := Compose([]string{in}, Stdout, Options{Stdout: &buf})
	require.NoError(t, err)
	assert.Equal(t, "# bar\n\nb\n\n", buf.String())
}

func TestCompose_UsageErrors(t *testing.T) {
	in := t.TempDir()
	file := writeFixture(t, in, "bar.txt", "# bar\n")
	out := filepath.Join(t.TempDir(), "out.txt")

	cases := map[string]struct {
		inputs []string
		out    string
	}{
		"mixed directory and file": {[]string{file, in}, out},
		"missing file in list":     {[]string{filepath.Join(in, "foo.txt"), file}, out},
		"missing directory":        {[]string{filepath.Join(in, "nope")}, out},
		"two directories":          {[]string{in, t.TempDir()}, out},
		"no inputs":                {nil, out},
		"output is a directory":    {[]string{in}, t.TempDir()},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Compose(tc.inputs, tc.out, Options{})
			require.Error(t, err)
			assert.True(t, IsUsage(err))
			assert.NoFileExists(t, out)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	doc := "# alpha\nfirst\n\n## detail\nmore\n\n# beta\n\n# gamma\nlast line\n"
	src := writeFixture(t, t.TempDir(), "doc.txt", doc)
	parts := t.TempDir()

	_, err := Decompose(src, parts, Options{})
	require.NoError(t, err)

	joined := filepath.Join(t.TempDir(), "joined.txt")
	_, err = Compose([]string{parts}, joined, Options{})
	require.NoError(t, err)

	want, _ := Parse(doc)
	got, _ := Parse(readFixture(t, joined))
	assert.Equal(t, want, got)
}

func TestCompose_WriteFailureIsNotUsage(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, "bar.txt", "# bar\n")
	out := filepath.Join(t.TempDir(), "missing", "out.txt")

	_, err := Compose([]string{in}, out, Options{})
	require.Error(t, err)
	assert.False(t, IsUsage(err))
}
