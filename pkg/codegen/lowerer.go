// Package codegen translates a typed Ember AST into Erlang source text:
// the lowering pass, the module emitter, and the records extractor. The
// pretty-printing decisions themselves live in pkg/doc; this package only
// builds the Doc tree.
package codegen

import (
	"fortio.org/log"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
	"github.com/emberlang/ember/pkg/names"
	"github.com/emberlang/ember/pkg/scope"
)

// tryErrorBinder is the reserved source name used for the error binding a
// try-let desugars into. The parser guarantees user code can never
// introduce an identifier with this shape, so it never collides with a
// source-level binding.
const tryErrorBinder = "ember@try_error"

// denominatorBinder is the reserved source name used for the non-literal
// denominator bound inside a division-by-zero guard.
const denominatorBinder = "ember@denominator"

// Lowerer holds the state private to lowering one top-level function:
// the scope environment that hands out fresh names under shadowing.
type Lowerer struct {
	env *scope.Environment
}

// NewLowerer returns a Lowerer with a fresh scope environment, ready to
// lower one top-level function's body.
func NewLowerer() *Lowerer {
	return &Lowerer{env: scope.New()}
}

func calleeIsBinOp(e ast.Expression) bool {
	_, ok := e.(*ast.BinOp)
	return ok
}

// parenthesizeIfBinOp wraps d in parentheses when e is itself a binary
// operator, since the target has no single fixed precedence table to lean
// on for an arbitrary nested operator.
func parenthesizeIfBinOp(e ast.Expression, d doc.Doc) doc.Doc {
	if calleeIsBinOp(e) {
		return d.Surround("(", ")")
	}
	return d
}

func isStringLiteralNode(n ast.Node) bool {
	switch n.(type) {
	case *ast.String, *ast.PatternString:
		return true
	default:
		return false
	}
}

// stringLiteralDoc renders a string literal as an Erlang UTF-8 binary,
// `<<"…"/utf8>>`.
func stringLiteralDoc(value string) doc.Doc {
	return doc.Str(`<<"` + names.EscapeString(value) + `"/utf8>>`)
}

// rawStringDoc renders a string literal inside a bit-string segment, where
// the segment's own type annotation already supplies the encoding so the
// value is written as a raw quoted string.
func rawStringDoc(value string) doc.Doc {
	return doc.Str(`"` + names.EscapeString(value) + `"`)
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}
