package codegen

import (
	"strings"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
)

var binOpSymbol = map[ast.BinOpKind]string{
	ast.AddInt: "+", ast.AddFloat: "+",
	ast.SubInt: "-", ast.SubFloat: "-",
	ast.MultInt: "*", ast.MultFloat: "*",
	ast.DivInt: "div", ast.DivFloat: "/",
	ast.ModuloInt: "rem",
	ast.Eq:        "=:=", ast.NotEq: "/=",
	ast.LtInt: "<", ast.LtFloat: "<",
	ast.LtEqInt: "=<", ast.LtEqFloat: "=<",
	ast.GtInt: ">", ast.GtFloat: ">",
	ast.GtEqInt: ">=", ast.GtEqFloat: ">=",
	ast.And: "andalso", ast.Or: "orelse",
}

func isDivisionOrModulo(k ast.BinOpKind) bool {
	switch k {
	case ast.DivInt, ast.DivFloat, ast.ModuloInt:
		return true
	default:
		return false
	}
}

// literalNonZero reports whether e is a compile-time literal that is not
// zero, in which case the division/modulo zero-guard can be skipped.
func literalNonZero(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Int:
		v := strings.TrimLeft(strings.ReplaceAll(n.Value, "_", ""), "-")
		if len(v) > 2 && v[0] == '0' && strings.ContainsRune("xXoObB", rune(v[1])) {
			v = v[2:]
		}
		return strings.TrimLeft(v, "0") != ""
	case *ast.Float:
		v := strings.ReplaceAll(n.Value, "_", "")
		if i := strings.IndexAny(v, "eE"); i >= 0 {
			v = v[:i]
		}
		v = strings.TrimRight(strings.TrimLeft(v, "-0."), "0")
		return v != ""
	default:
		return false
	}
}

// lowerBinOp renders a binary operator: typed dispatch to the target
// operator, zero-guards on integer/float division and integer modulo, and
// parenthesisation of binary-operator operands.
func (lw *Lowerer) lowerBinOp(b *ast.BinOp) doc.Doc {
	symbol, ok := binOpSymbol[b.Kind]
	if !ok {
		bug("unrecognised BinOpKind", b)
	}

	leftDoc := parenthesizeIfBinOp(b.Left, lw.LowerExpr(b.Left))
	rightDoc := parenthesizeIfBinOp(b.Right, lw.LowerExpr(b.Right))

	if isDivisionOrModulo(b.Kind) && !literalNonZero(b.Right) {
		return lw.lowerGuardedDivision(b, symbol, leftDoc, rightDoc)
	}

	return doc.Concat(leftDoc, doc.Str(" "+symbol+" "), rightDoc)
}

// lowerGuardedDivision wraps a non-literal denominator in
// `case RHS of 0 -> 0; Denom -> LHS op Denom end` (0.0 for float
// division), since the target platform's `/`, `div` and `rem` raise on a
// zero right-hand side. Literal non-zero denominators skip the guard
// entirely, including negative ones (literalNonZero treats a leading `-`
// as part of the sign, not as cause for doubt).
func (lw *Lowerer) lowerGuardedDivision(b *ast.BinOp, symbol string, leftDoc, rightDoc doc.Doc) doc.Doc {
	zero := "0"
	if b.Kind == ast.DivFloat {
		zero = "0.0"
	}
	denom := lw.env.NextLocalVarName(denominatorBinder)
	body := doc.Concat(
		doc.Str("case "), rightDoc, doc.Str(" of"),
		doc.Line().Nest(4), doc.Str(zero+" -> "+zero+";").Nest(4),
		doc.Line().Nest(4),
		doc.Concat(doc.Str(denom+" -> "), leftDoc, doc.Str(" "+symbol+" "+denom)).Nest(4),
		doc.Line(), doc.Str("end"),
	)
	return body.Group()
}

// lowerUnary renders the two unary forms: arithmetic negation and boolean
// `not`.
func (lw *Lowerer) lowerUnary(u *ast.Unary) doc.Doc {
	operandDoc := parenthesizeIfBinOp(u.Operand, lw.LowerExpr(u.Operand))
	switch u.Kind {
	case ast.NegateNumber:
		return doc.Concat(doc.Str("- "), operandDoc)
	case ast.NegateBool:
		return doc.Concat(doc.Str("(not "), operandDoc, doc.Str(")"))
	default:
		bug("unrecognised UnaryKind", u)
		return doc.Nil()
	}
}
