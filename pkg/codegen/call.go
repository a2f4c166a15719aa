package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
	"github.com/emberlang/ember/pkg/names"
)

// lowerCall dispatches on the callee's resolved constructor.
func (lw *Lowerer) lowerCall(c *ast.Call) doc.Doc {
	switch callee := c.Callee.(type) {
	case *ast.Var:
		switch callee.Constructor.Origin {
		case ast.OriginRecord:
			info := callee.Constructor.Record
			if info == nil {
				bug("record call missing RecordConstructorInfo", c)
			}
			return lw.lowerRecordConstruction(info.Name, c.Arguments)
		case ast.OriginModuleFunction:
			args := lw.lowerArgs(c.Arguments)
			return doc.Concat(doc.Str(qualifiedName(callee.Constructor.Module, callee.Name)), doc.Str("("), args, doc.Str(")")).Group()
		}
	case *ast.Fn:
		if callee.IsCapture {
			return lw.lowerCaptureCall(callee, c.Arguments)
		}
	}

	// Otherwise -> (expr)(args).
	calleeDoc := lw.LowerExpr(c.Callee).Surround("(", ")")
	args := lw.lowerArgs(c.Arguments)
	return doc.Concat(calleeDoc, doc.Str("("), args, doc.Str(")")).Group()
}

func (lw *Lowerer) lowerArgs(args []ast.Expression) doc.Doc {
	docs := make([]doc.Doc, len(args))
	for i, a := range args {
		docs[i] = lw.LowerExpr(a)
	}
	return joinComma(docs)
}

// lowerCaptureBody lowers a capture closure referenced as a bare value
// (not immediately applied): the body, with the reserved placeholder
// substituted by itself, wrapped as `fun(CaptureArg) -> Body end`.
func (lw *Lowerer) lowerCaptureBody(f *ast.Fn) doc.Doc {
	call, ok := singleStatement(f.Body).(*ast.Call)
	if !ok {
		bug("capture body must be a single call expression", f)
	}
	argName := lw.env.NextLocalVarName(f.CaptureVar)
	replaced := substituteCapture(call, f.CaptureVar, &ast.Var{
		Name:        f.CaptureVar,
		Constructor: ast.ValueConstructor{Origin: ast.OriginLocal},
		Position:    f.Position,
	})
	body := lw.LowerExpr(replaced)
	return doc.Concat(doc.Str("fun("+argName+") ->"), doc.Line().Nest(4), body.Nest(4), doc.Line(), doc.Str("end")).Group()
}

// lowerCaptureCall lowers a capture that is applied directly, e.g.
// `f(_)(x)` in source surface syntax: the unique reserved placeholder
// occurrence in the call is replaced by the single supplied argument and
// lowering recurses.
func (lw *Lowerer) lowerCaptureCall(f *ast.Fn, suppliedArgs []ast.Expression) doc.Doc {
	if len(suppliedArgs) != 1 {
		bug("capture call must supply exactly one argument", f)
	}
	call, ok := singleStatement(f.Body).(*ast.Call)
	if !ok {
		bug("capture body must be a single call expression", f)
	}
	replaced := substituteCapture(call, f.CaptureVar, suppliedArgs[0])
	return lw.LowerExpr(replaced)
}

func singleStatement(body []ast.Expression) ast.Expression {
	if len(body) != 1 {
		return nil
	}
	return body[0]
}

// substituteCapture replaces the unique occurrence of a Var named
// captureVar within call's argument list with replacement. The capture
// placeholder is guaranteed by the parser to appear exactly once in the
// call's argument list, never nested deeper.
func substituteCapture(call *ast.Call, captureVar string, replacement ast.Expression) *ast.Call {
	newArgs := make([]ast.Expression, len(call.Arguments))
	for i, a := range call.Arguments {
		if v, ok := a.(*ast.Var); ok && v.Name == captureVar {
			newArgs[i] = replacement
		} else {
			newArgs[i] = a
		}
	}
	return &ast.Call{Callee: call.Callee, Arguments: newArgs, Position: call.Position}
}

// lowerRecordConstruction renders a record construction: arity 0 renders
// a bare snake_case atom, otherwise a tuple `{tag, fields…}` in declared
// field order.
func (lw *Lowerer) lowerRecordConstruction(ctorName string, fields []ast.Expression) doc.Doc {
	tag := names.Atom(names.SnakeCase(ctorName))
	if len(fields) == 0 {
		return doc.Str(tag)
	}
	docs := make([]doc.Doc, len(fields))
	for i, f := range fields {
		docs[i] = lw.LowerExpr(f)
	}
	return doc.Concat(doc.Str("{"+tag+", "), joinComma(docs), doc.Str("}")).NestCurrent().Group()
}

// lowerRecordAccess renders `erlang:element(i+2, record)`, offset one for
// the tag and one for 1-based indexing.
func (lw *Lowerer) lowerRecordAccess(r *ast.RecordAccess) doc.Doc {
	return doc.Concat(
		doc.Str("erlang:element("+itoa(r.Index+2)+", "),
		lw.LowerExpr(r.Record),
		doc.Str(")"),
	)
}

// lowerRecordUpdate implements the left-fold of `erlang:setelement(i+2,
// acc, v)` starting from acc = spread.
func (lw *Lowerer) lowerRecordUpdate(r *ast.RecordUpdate) doc.Doc {
	acc := lw.LowerExpr(r.Spread)
	for _, ch := range r.Changes {
		valueDoc := lw.LowerExpr(ch.Value)
		acc = doc.Concat(
			doc.Str("erlang:setelement("+itoa(ch.Index+2)+", "),
			acc, doc.Str(", "), valueDoc, doc.Str(")"),
		)
	}
	return acc
}

func (lw *Lowerer) lowerTuple(t *ast.Tuple) doc.Doc {
	docs := make([]doc.Doc, len(t.Elements))
	for i, e := range t.Elements {
		docs[i] = lw.LowerExpr(e)
	}
	return doc.Concat(doc.Str("{"), joinComma(docs), doc.Str("}")).NestCurrent().Group()
}

// lowerList flattens a contiguous cons spine, recursing on the tail; if
// the final tail is not nil, emits `[e1, …, en | tail]`, else `[e1, …,
// en]`.
func (lw *Lowerer) lowerList(e ast.Expression) doc.Doc {
	var elems []ast.Expression
	cur := e
	for {
		switch n := cur.(type) {
		case *ast.ListNil:
			docs := make([]doc.Doc, len(elems))
			for i, el := range elems {
				docs[i] = lw.LowerExpr(el)
			}
			return doc.Concat(doc.Str("["), joinComma(docs), doc.Str("]")).NestCurrent().Group()
		case *ast.ListCons:
			elems = append(elems, n.Head)
			cur = n.Tail
		default:
			docs := make([]doc.Doc, len(elems))
			for i, el := range elems {
				docs[i] = lw.LowerExpr(el)
			}
			tailDoc := lw.LowerExpr(cur)
			return doc.Concat(doc.Str("["), joinComma(docs), doc.Str(" | "), tailDoc, doc.Str("]")).NestCurrent().Group()
		}
	}
}

func (lw *Lowerer) lowerTodo(t *ast.Todo) doc.Doc {
	if t.Label == "" {
		return doc.Str("erlang:error({ember_error, todo})")
	}
	return doc.Str(`erlang:error({ember_error, todo, "` + names.EscapeString(t.Label) + `"})`)
}
