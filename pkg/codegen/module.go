package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
	"github.com/emberlang/ember/pkg/names"
)

// EmitModule renders one compilation unit: module header, -compile
// directive, conditional export list, per-statement documents separated
// by two blank lines, trailing newline.
func EmitModule(mod *ast.Module) doc.Doc {
	segments := make([]string, len(mod.Name))
	for i, s := range mod.Name {
		segments[i] = names.ModuleSegment(s)
	}
	header := doc.Concat(
		doc.Str("-module("+joinAt(segments)+")."), doc.Line(),
		doc.Str("-compile(no_auto_import)."), doc.Line(),
	)

	exports := exportList(mod.Statements)
	if !exports.IsNil() {
		header = doc.Concat(header, exports, doc.Line())
	}

	var stmtDocs []doc.Doc
	for _, s := range mod.Statements {
		d := emitStatement(s)
		if d.IsNil() {
			continue
		}
		stmtDocs = append(stmtDocs, d)
	}

	body := make([]doc.Doc, 0, len(stmtDocs)*2)
	for i, d := range stmtDocs {
		if i > 0 {
			body = append(body, doc.Lines(3))
		}
		body = append(body, d)
	}

	return doc.Concat(header, doc.Line(), doc.Concat(body...), doc.Line())
}

func joinAt(segs []string) string {
	out := ""
	for i, s := range segs {
		if i > 0 {
			out += "@"
		}
		out += s
	}
	return out
}

func exportList(stmts []ast.Statement) doc.Doc {
	var entries []string
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.Function:
			if n.Publicity == ast.Public {
				entries = append(entries, names.Atom(n.Name)+"/"+itoa(len(n.Arguments)))
			}
		case *ast.ExternalFunction:
			if n.Publicity == ast.Public {
				entries = append(entries, names.Atom(n.Name)+"/"+itoa(n.Arity))
			}
		}
	}
	if len(entries) == 0 {
		return doc.Nil()
	}
	var sb []doc.Doc
	for i, e := range entries {
		if i > 0 {
			sb = append(sb, doc.Str(", "))
		}
		sb = append(sb, doc.Str(e))
	}
	return doc.Concat(doc.Str("-export(["), doc.Concat(sb...), doc.Str("])."))
}

// emitStatement emits one statement's document, or Nil for statement
// kinds the module emitter skips entirely.
func emitStatement(s ast.Statement) doc.Doc {
	switch n := s.(type) {
	case *ast.Function:
		return emitFunction(n)
	case *ast.ExternalFunction:
		if n.Publicity != ast.Public {
			return doc.Nil()
		}
		return emitExternalFunctionWrapper(n)
	default:
		return doc.Nil()
	}
}

// emitFunction nests the body by 4 spaces under `name(args) ->`,
// terminated by `.`.
func emitFunction(f *ast.Function) doc.Doc {
	lw := NewLowerer()
	args := make([]doc.Doc, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = doc.Str(lw.env.NextLocalVarName(a.Name))
	}
	body := lw.lowerBlock(f.Body)
	return doc.Concat(
		doc.Str(names.Atom(f.Name)+"("), joinComma(args), doc.Str(") ->"),
		doc.Line().Nest(4), body.Nest(4),
		doc.Str("."),
	).Group()
}

// emitExternalFunctionWrapper emits the trivial wrapper `name(A, B, …) ->
// mod:fun(A, B, …).` for an external function binding.
func emitExternalFunctionWrapper(e *ast.ExternalFunction) doc.Doc {
	args := make([]doc.Doc, e.Arity)
	for i := range args {
		args[i] = doc.Str(placeholderName(i))
	}
	argList := joinComma(args)
	return doc.Concat(
		doc.Str(names.Atom(e.Name)+"("), argList, doc.Str(") -> "),
		doc.Str(names.Atom(e.Module)+":"+names.Atom(e.Function)+"("), argList, doc.Str(")."),
	)
}
