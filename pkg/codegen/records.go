package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/names"
)

// RecordHeader is one generated `.hrl` entry: a record name and its field
// list, both already escaped.
type RecordHeader struct {
	ConstructorName string // original, for path computation
	Text            string
}

// ExtractRecords is the records extractor: for every public custom-type
// constructor whose argument list is non-empty and every argument is
// labelled, emit one header entry `-record(snake_name, {field1, field2,
// …}).`. Unlabelled-arg constructors are skipped — no header file is
// produced for them.
func ExtractRecords(mod *ast.Module) []RecordHeader {
	var out []RecordHeader
	for _, s := range mod.Statements {
		ct, ok := s.(*ast.CustomType)
		if !ok || ct.Publicity != ast.Public {
			continue
		}
		for _, ctor := range ct.Constructors {
			if !ast.Labelled(ctor.Fields) {
				continue
			}
			out = append(out, RecordHeader{
				ConstructorName: ctor.Name,
				Text:            recordHeaderText(ctor),
			})
		}
	}
	return out
}

func recordHeaderText(ctor ast.Constructor) string {
	name := names.Atom(names.SnakeCase(ctor.Name))
	fields := ""
	for i, f := range ctor.Fields {
		if i > 0 {
			fields += ", "
		}
		fields += names.Atom(f.Label)
	}
	return "-record(" + name + ", {" + fields + "}).\n"
}
