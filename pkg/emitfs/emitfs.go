// Package emitfs assembles the (path, text) output pairs the core's
// output contract names and hands them to a caller-supplied
// writer. It never touches the real filesystem unless the caller passes
// an adapter that does.
package emitfs

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/codegen"
)

// Options configures Generate for one module.
type Options struct {
	SourceBase string
	OriginDir  string
	// Width is the pretty-printing column width; zero means
	// codegen.Width.
	Width int
}

// File is one generated output: a path and its full text.
type File struct {
	Path string
	Text string
}

// Outputs is every file generated for one module: its body plus zero or
// more record headers.
type Outputs struct {
	Files []File
}

// ModulePath computes `<source_base>/gen/<origin_dir>/<module@name>.erl`.
func ModulePath(opts Options, moduleName []string) string {
	return filepath.Join(opts.SourceBase, "gen", opts.OriginDir, strings.Join(moduleName, "@")+".erl")
}

// RecordHeaderPath computes `<source_base>/gen/<origin_dir>/
// <module@name>_<Ctor>.hrl`.
func RecordHeaderPath(opts Options, moduleName []string, ctor string) string {
	return filepath.Join(opts.SourceBase, "gen", opts.OriginDir, strings.Join(moduleName, "@")+"_"+ctor+".hrl")
}

// Generate runs the module emitter and records extractor for mod and
// returns every (path, text) pair ready to write.
func Generate(mod *ast.Module, opts Options) (Outputs, error) {
	width := opts.Width
	if width == 0 {
		width = codegen.Width
	}
	gen, err := codegen.GenerateWidth(mod, width)
	if err != nil {
		return Outputs{}, err
	}

	files := []File{{Path: ModulePath(opts, mod.Name), Text: gen.ModuleText}}
	for _, rh := range gen.RecordHeaders {
		files = append(files, File{
			Path: RecordHeaderPath(opts, mod.Name, rh.ConstructorName),
			Text: rh.Text,
		})
	}
	return Outputs{Files: files}, nil
}

// WriteFS is the file-system collaborator this package hands output to.
// It is deliberately narrower than os: Generate's caller decides whether
// writes land on disk, in memory, or nowhere.
type WriteFS interface {
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
}

// WriteTo writes every file in o to fsys, creating parent directories as
// needed. The first failure is wrapped with the path that failed and
// returned immediately — no partial retry.
func (o Outputs) WriteTo(fsys WriteFS) error {
	for _, f := range o.Files {
		dir := filepath.Dir(f.Path)
		if err := fsys.MkdirAll(dir); err != nil {
			return errors.Wrapf(err, "creating directory %s", dir)
		}
		if err := fsys.WriteFile(f.Path, []byte(f.Text)); err != nil {
			return errors.Wrapf(err, "writing %s", f.Path)
		}
	}
	return nil
}
