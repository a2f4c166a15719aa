package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
	"github.com/emberlang/ember/pkg/names"
)

// LowerExpr translates one typed expression node into a Doc. Every case
// is a deterministic, total mapping; an AST shape this switch doesn't
// recognise is a bug in an upstream pass and panics via bug(), caught at
// the Generate boundary.
func (lw *Lowerer) LowerExpr(e ast.Expression) doc.Doc {
	debugf("lowering expression %T at position %d", e, e.Pos())
	switch n := e.(type) {
	case *ast.Int:
		return doc.Str(names.Int(n.Value))
	case *ast.Float:
		return doc.Str(names.Float(n.Value))
	case *ast.String:
		return stringLiteralDoc(n.Value)
	case *ast.Var:
		return lw.lowerVar(n)
	case *ast.Seq:
		return lw.lowerSeq(n)
	case *ast.Let:
		return lw.lowerLet(n)
	case *ast.Case:
		return lw.lowerCase(n)
	case *ast.Fn:
		return lw.lowerFn(n)
	case *ast.Call:
		return lw.lowerCall(n)
	case *ast.RecordConstruction:
		return lw.lowerRecordConstruction(n.ConstructorName, n.Fields)
	case *ast.RecordAccess:
		return lw.lowerRecordAccess(n)
	case *ast.RecordUpdate:
		return lw.lowerRecordUpdate(n)
	case *ast.Tuple:
		return lw.lowerTuple(n)
	case *ast.TupleIndex:
		return doc.Concat(
			doc.Str("erlang:element("),
			doc.Str(itoa(n.Index+1)+", "),
			lw.LowerExpr(n.Tuple),
			doc.Str(")"),
		)
	case *ast.ListCons, *ast.ListNil:
		return lw.lowerList(e)
	case *ast.Pipe:
		return lw.LowerExpr(&ast.Call{Callee: n.Func, Arguments: []ast.Expression{n.Value}, Position: n.Position})
	case *ast.BinOp:
		return lw.lowerBinOp(n)
	case *ast.Unary:
		return lw.lowerUnary(n)
	case *ast.Todo:
		return lw.lowerTodo(n)
	case *ast.BitString:
		return lw.emitBitStringSegments(n.Segments, true)
	default:
		bug("unsupported expression node in lowering", e)
		return doc.Nil()
	}
}

func (lw *Lowerer) lowerVar(v *ast.Var) doc.Doc {
	c := v.Constructor
	switch c.Origin {
	case ast.OriginLocal:
		return doc.Str(lw.env.LocalVarName(v.Name))

	case ast.OriginRecord:
		if c.Record == nil {
			bug("record-origin Var missing RecordConstructorInfo", v)
		}
		if len(c.Record.Fields) == 0 {
			return doc.Str(names.Atom(names.SnakeCase(c.Record.Name)))
		}
		return recordConstructorClosure(c.Record.Name, len(c.Record.Fields))

	case ast.OriginModuleFunction:
		qualified := qualifiedName(c.Module, v.Name)
		if c.Type.Kind == ast.TypeFn {
			return doc.Str("fun " + qualified + "/" + itoa(c.Type.Arity))
		}
		return doc.Str(qualified + "()")

	case ast.OriginModuleConstant:
		return doc.Str(qualifiedName(c.Module, v.Name) + "()")

	default:
		bug("Var has unrecognised ValueConstructor origin", v)
		return doc.Nil()
	}
}

func qualifiedName(module, name string) string {
	local := names.Atom(name)
	if module == "" {
		return local
	}
	return names.Atom(module) + ":" + local
}

// recordConstructorClosure builds `fun(A, B, …) -> {tag, A, B, …} end` for
// a non-zero-arity record constructor referenced as a bare value rather
// than applied.
func recordConstructorClosure(ctorName string, arity int) doc.Doc {
	placeholders := make([]doc.Doc, arity)
	for i := range placeholders {
		placeholders[i] = doc.Str(placeholderName(i))
	}
	args := joinComma(placeholders)
	body := doc.Concat(doc.Str("{"+names.Atom(names.SnakeCase(ctorName))+", "), joinComma(placeholders), doc.Str("}"))
	return doc.Concat(doc.Str("fun("), args, doc.Str(") -> "), body, doc.Str(" end"))
}

// placeholderName returns the i'th uppercase ASCII placeholder, A, B, C, …
func placeholderName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	// Beyond 26 arguments we fall back to A1, A2, … rather than wrapping
	// back to 'A' and silently colliding.
	return "A" + itoa(i-26+1)
}

func joinComma(docs []doc.Doc) doc.Doc {
	out := make([]doc.Doc, 0, len(docs)*2)
	for i, d := range docs {
		if i > 0 {
			out = append(out, doc.Str(", "))
		}
		out = append(out, d)
	}
	return doc.Concat(out...)
}

// lowerSeq implements `seq(a, b) → force_break ∘ a ∘ "," ∘ line ∘ b`.
// force_break guarantees the two statements never fuse onto one line.
func (lw *Lowerer) lowerSeq(s *ast.Seq) doc.Doc {
	return doc.Concat(
		doc.ForceBreakDoc(),
		lw.LowerExpr(s.First),
		doc.Str(","),
		doc.Line(),
		lw.LowerExpr(s.Then),
	)
}

func isSeqOrLet(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Seq, *ast.Let:
		return true
	default:
		return false
	}
}

func (lw *Lowerer) lowerLet(l *ast.Let) doc.Doc {
	if l.Kind == ast.LetTry {
		return lw.lowerTryLet(l)
	}
	return lw.lowerRegularLet(l)
}

// lowerRegularLet renders `pattern = value, ↵ then`. value is wrapped in
// `begin … end` when it is itself a Seq or Let, bounding the comma scope
// so the outer `,` unambiguously separates the binding from `then`.
func (lw *Lowerer) lowerRegularLet(l *ast.Let) doc.Doc {
	valueDoc := lw.LowerExpr(l.Value)
	if isSeqOrLet(l.Value) {
		valueDoc = doc.Concat(doc.Str("begin"), doc.Line().Nest(4), valueDoc.Nest(4), doc.Line(), doc.Str("end"))
	}
	patternDoc := lw.LowerPattern(l.Pattern)
	return doc.Concat(
		patternDoc, doc.Str(" = "), valueDoc, doc.Str(","),
		doc.Line(),
		lw.LowerExpr(l.Then),
	)
}

// lowerTryLet desugars `try pattern = value` to
// `case value of {error, E} -> {error, E}; {ok, pat} -> then end`.
func (lw *Lowerer) lowerTryLet(l *ast.Let) doc.Doc {
	valueDoc := lw.LowerExpr(l.Value)
	errName := lw.env.NextLocalVarName(tryErrorBinder)
	patternDoc := lw.LowerPattern(l.Pattern)
	thenDoc := lw.LowerExpr(l.Then)

	errClause := doc.Concat(
		doc.Str("{error, "+errName+"} -> {error, "+errName+"}"),
	)
	okClause := doc.Concat(
		doc.Str("{ok, "), patternDoc, doc.Str("} ->"),
		doc.Line().Nest(4),
		thenDoc.Nest(4),
	)
	clauses := doc.Concat(errClause, doc.Str(";"), doc.Line(), okClause)
	return doc.Concat(
		doc.Str("case "), valueDoc, doc.Str(" of"),
		doc.Line().Nest(4), clauses.Nest(4),
		doc.Line(), doc.Str("end"),
	).Group()
}

func (lw *Lowerer) lowerFn(f *ast.Fn) doc.Doc {
	if f.IsCapture {
		return lw.lowerCaptureBody(f)
	}
	args := make([]doc.Doc, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = doc.Str(lw.env.NextLocalVarName(a.Name))
	}
	body := lw.lowerBlock(f.Body)
	return doc.Concat(
		doc.Str("fun("), joinComma(args), doc.Str(") ->"),
		doc.Line().Nest(4), body.Nest(4),
		doc.Line(), doc.Str("end"),
	).Group()
}

// lowerBlock lowers a sequence of expressions making up a function body,
// chaining them with Seq semantics (the last expression is the value).
func (lw *Lowerer) lowerBlock(body []ast.Expression) doc.Doc {
	if len(body) == 0 {
		return doc.Str("ok")
	}
	if len(body) == 1 {
		return lw.LowerExpr(body[0])
	}
	chain := body[len(body)-1]
	for i := len(body) - 2; i >= 0; i-- {
		chain = &ast.Seq{First: body[i], Then: chain, Position: body[i].Pos()}
	}
	return lw.LowerExpr(chain)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
