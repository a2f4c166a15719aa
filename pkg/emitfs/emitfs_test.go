package emitfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/ast"
)

func TestModulePathJoinsSegmentsWithAt(t *testing.T) {
	opts := Options{SourceBase: "src", OriginDir: "app"}
	got := ModulePath(opts, []string{"my", "mod"})
	assert.Equal(t, "src/gen/app/my@mod.erl", got)
}

func TestRecordHeaderPathAppendsConstructorName(t *testing.T) {
	opts := Options{SourceBase: "src", OriginDir: "app"}
	got := RecordHeaderPath(opts, []string{"my", "mod"}, "Box")
	assert.Equal(t, "src/gen/app/my@mod_Box.hrl", got)
}

func recordType(name string, labels ...string) *ast.CustomType {
	fields := make([]ast.ConstructorField, len(labels))
	for i, l := range labels {
		fields[i] = ast.ConstructorField{Label: l}
	}
	return &ast.CustomType{
		Publicity:    ast.Public,
		Name:         name,
		Constructors: []ast.Constructor{{Name: name, Fields: fields}},
	}
}

func TestGenerateProducesModuleFileAndRecordHeaders(t *testing.T) {
	mod := &ast.Module{
		Name:       []string{"my", "mod"},
		Statements: []ast.Statement{recordType("Box", "value")},
	}
	out, err := Generate(mod, Options{SourceBase: "src", OriginDir: "app"})
	require.NoError(t, err)
	require.Len(t, out.Files, 2)

	assert.Equal(t, "src/gen/app/my@mod.erl", out.Files[0].Path)
	assert.Contains(t, out.Files[0].Text, "-module(my@mod).")

	assert.Equal(t, "src/gen/app/my@mod_Box.hrl", out.Files[1].Path)
	assert.Equal(t, "-record(box, {value}).\n", out.Files[1].Text)
}

func TestGenerateUsesDefaultWidthWhenZero(t *testing.T) {
	mod := &ast.Module{Name: []string{"m"}}
	out, err := Generate(mod, Options{SourceBase: "src"})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)
}

type fakeFS struct {
	dirs  []string
	files map[string]string
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[string]string)}
}

func (f *fakeFS) MkdirAll(path string) error {
	f.dirs = append(f.dirs, path)
	return nil
}

func (f *fakeFS) WriteFile(path string, data []byte) error {
	f.files[path] = string(data)
	return nil
}

func TestWriteToWritesEveryFileAndCreatesDirectories(t *testing.T) {
	out := Outputs{Files: []File{
		{Path: "src/gen/app/my@mod.erl", Text: "-module(my@mod).\n"},
		{Path: "src/gen/app/my@mod_Box.hrl", Text: "-record(box, {value}).\n"},
	}}
	fs := newFakeFS()
	require.NoError(t, out.WriteTo(fs))

	assert.Equal(t, "-module(my@mod).\n", fs.files["src/gen/app/my@mod.erl"])
	assert.Equal(t, "-record(box, {value}).\n", fs.files["src/gen/app/my@mod_Box.hrl"])
	assert.Contains(t, fs.dirs, "src/gen/app")
}

type failingMkdirFS struct{}

func (failingMkdirFS) MkdirAll(path string) error { return assert.AnError }
func (failingMkdirFS) WriteFile(path string, data []byte) error {
	return nil
}

func TestWriteToWrapsMkdirFailureWithPath(t *testing.T) {
	out := Outputs{Files: []File{{Path: "src/gen/app/m.erl", Text: "x"}}}
	err := out.WriteTo(failingMkdirFS{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "creating directory src/gen/app")
}

type failingWriteFS struct{}

func (failingWriteFS) MkdirAll(path string) error { return nil }
func (failingWriteFS) WriteFile(path string, data []byte) error {
	return assert.AnError
}

func TestWriteToWrapsWriteFailureWithPath(t *testing.T) {
	out := Outputs{Files: []File{{Path: "src/gen/app/m.erl", Text: "x"}}}
	err := out.WriteTo(failingWriteFS{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "writing src/gen/app/m.erl")
}
