package codegen

import (
	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
)

// Width is the pretty-printing column limit for target-platform module
// emission. The documentation emitter, out of scope here, uses 65.
const Width = 80

// Generated holds the pretty-printed module text and every record header
// text produced for one typed module.
type Generated struct {
	ModuleText    string
	RecordHeaders []RecordHeader
}

// Generate is the single package-level boundary that recovers from an
// internal invariant violation: lowering panics with a Bug value, this
// function recovers it, discards any output already assembled for the
// current module, and returns an error prefixed "fatal compiler bug: ".
// A Writer I/O error surfacing from the pretty printer is returned as-is,
// wrapped with context about which module failed.
func Generate(mod *ast.Module) (Generated, error) {
	return GenerateWidth(mod, Width)
}

// GenerateWidth is Generate with an explicit column width, for callers (the
// CLI's -width flag) that need something other than the default.
func GenerateWidth(mod *ast.Module, width int) (result Generated, err error) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(Bug); ok {
				log.Errf("fatal compiler bug while lowering module %s: %s", mod.JoinedName(), b.Invariant)
				result = Generated{}
				err = errors.Wrap(b, "fatal compiler bug")
				return
			}
			panic(r)
		}
	}()

	tree := EmitModule(mod)
	text, printErr := doc.ToString(tree, width)
	if printErr != nil {
		return Generated{}, errors.Wrapf(printErr, "printing module %s", mod.JoinedName())
	}

	return Generated{
		ModuleText:    text,
		RecordHeaders: ExtractRecords(mod),
	}, nil
}
