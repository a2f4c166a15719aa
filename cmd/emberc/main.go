// Command emberc reads one typed-module fixture and writes the generated
// Erlang source and record headers for it. The real compiler front end
// (parsing, type checking) is out of scope for this core; emberc exists so
// the lowering pipeline has a runnable end to end.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/emberlang/ember/pkg/codegen"
	"github.com/emberlang/ember/pkg/emitfs"
	"github.com/emberlang/ember/pkg/fixture"
)

var (
	outDir  = flag.String("out", "", "output directory (defaults to the fixture's own directory)")
	width   = flag.Int("width", codegen.Width, "pretty-printing column width")
	debug   = flag.Bool("debug", false, "log a dump of the decoded module AST at debug level before lowering")
	origins = flag.String("origin", "", "origin subdirectory recorded under gen/ (defaults to empty)")
)

func main() {
	cli.MinArgs = 1
	cli.MaxArgs = 1
	cli.ArgsHelp = "<fixture.json>"
	cli.Main()

	fixturePath := flag.Arg(0)
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		log.Fatalf("reading fixture %s: %v", fixturePath, err)
	}

	mod, err := fixture.Load(data)
	if err != nil {
		log.Fatalf("decoding fixture %s: %v", fixturePath, err)
	}

	if *debug {
		log.Debugf("decoded module: %s", spew.Sdump(mod))
	}

	out := *outDir
	if out == "" {
		out = filepath.Dir(fixturePath)
	}

	opts := emitfs.Options{SourceBase: out, OriginDir: *origins, Width: *width}
	outputs, err := emitfs.Generate(mod, opts)
	if err != nil {
		log.Fatalf("generating module %s: %v", mod.JoinedName(), err)
	}

	if err := outputs.WriteTo(emitfs.OSFileSystem{}); err != nil {
		log.Fatalf("writing output for module %s: %v", mod.JoinedName(), errors.Cause(err))
	}

	for _, f := range outputs.Files {
		log.Infof("wrote %s", f.Path)
	}
}
