package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
)

func render(t *testing.T, d doc.Doc) string {
	t.Helper()
	text, err := doc.ToString(d, 80)
	require.NoError(t, err)
	return text
}

func TestLowerIntAndFloatLiterals(t *testing.T) {
	lw := NewLowerer()
	assert.Equal(t, "16#FF", render(t, lw.LowerExpr(&ast.Int{Value: "0xFF"})))
	assert.Equal(t, "1.5", render(t, lw.LowerExpr(&ast.Float{Value: "1.5"})))
}

func TestLowerStringLiteralIsUTF8Binary(t *testing.T) {
	lw := NewLowerer()
	got := render(t, lw.LowerExpr(&ast.String{Value: "hi\n"}))
	assert.Equal(t, `<<"hi\n"/utf8>>`, got)
}

func TestLowerLocalVarUsesCapitalizedName(t *testing.T) {
	lw := NewLowerer()
	v := &ast.Var{Name: "count", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}}
	assert.Equal(t, "Count", render(t, lw.LowerExpr(v)))
}

func TestLowerModuleFunctionVarAsValueIsFunRef(t *testing.T) {
	lw := NewLowerer()
	v := &ast.Var{
		Name: "map",
		Constructor: ast.ValueConstructor{
			Origin: ast.OriginModuleFunction, Module: "lists",
			Type: ast.Type{Kind: ast.TypeFn, Arity: 2},
		},
	}
	assert.Equal(t, "fun lists:map/2", render(t, lw.LowerExpr(v)))
}

func TestLowerModuleConstantVarIsNullaryCall(t *testing.T) {
	lw := NewLowerer()
	v := &ast.Var{
		Name:        "pi",
		Constructor: ast.ValueConstructor{Origin: ast.OriginModuleConstant, Module: "math"},
	}
	assert.Equal(t, "math:pi()", render(t, lw.LowerExpr(v)))
}

func TestLowerSeqForcesBreakBetweenStatements(t *testing.T) {
	lw := NewLowerer()
	s := &ast.Seq{
		First: &ast.Int{Value: "1"},
		Then:  &ast.Int{Value: "2"},
	}
	got := render(t, lw.LowerExpr(s))
	assert.Equal(t, "1,\n2", got)
}

func TestLowerRegularLetBindsAndContinues(t *testing.T) {
	lw := NewLowerer()
	l := &ast.Let{
		Kind:    ast.LetRegular,
		Pattern: &ast.PatternVar{Name: "x"},
		Value:   &ast.Int{Value: "1"},
		Then:    &ast.Var{Name: "x", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}},
	}
	got := render(t, lw.LowerExpr(l))
	assert.Equal(t, "X = 1,\nX", got)
}

func TestLowerRegularLetWrapsSeqValueInBeginEnd(t *testing.T) {
	lw := NewLowerer()
	l := &ast.Let{
		Kind:    ast.LetRegular,
		Pattern: &ast.PatternDiscard{},
		Value: &ast.Seq{
			First: &ast.Int{Value: "1"},
			Then:  &ast.Int{Value: "2"},
		},
		Then: &ast.Int{Value: "3"},
	}
	got := render(t, lw.LowerExpr(l))
	assert.Equal(t, "_ = begin\n    1,\n    2\nend,\n3", got)
}

func TestLowerTryLetDesugarsToErrorOkCase(t *testing.T) {
	lw := NewLowerer()
	l := &ast.Let{
		Kind:    ast.LetTry,
		Pattern: &ast.PatternVar{Name: "v"},
		Value:   &ast.Var{Name: "result", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}},
		Then:    &ast.Var{Name: "v", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}},
	}
	got := render(t, lw.LowerExpr(l))
	assert.Contains(t, got, "case Result of")
	assert.Contains(t, got, "{error, ")
	assert.Contains(t, got, "} -> {error, ")
	assert.Contains(t, got, "{ok, V} ->")
	assert.Contains(t, got, "end")
}

func TestLowerTupleIndex(t *testing.T) {
	lw := NewLowerer()
	ti := &ast.TupleIndex{Tuple: &ast.Var{Name: "t", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}}, Index: 1}
	assert.Equal(t, "erlang:element(2, T)", render(t, lw.LowerExpr(ti)))
}

func TestLowerPipeDesugarsToCall(t *testing.T) {
	lw := NewLowerer()
	p := &ast.Pipe{
		Value: &ast.Int{Value: "1"},
		Func: &ast.Var{Name: "f", Constructor: ast.ValueConstructor{
			Origin: ast.OriginModuleFunction, Type: ast.Type{Kind: ast.TypeFn, Arity: 1},
		}},
	}
	assert.Equal(t, "f(1)", render(t, lw.LowerExpr(p)))
}

func TestLowerTodoWithoutLabel(t *testing.T) {
	lw := NewLowerer()
	got := render(t, lw.LowerExpr(&ast.Todo{}))
	assert.Equal(t, "erlang:error({ember_error, todo})", got)
}

func TestLowerTodoWithLabel(t *testing.T) {
	lw := NewLowerer()
	got := render(t, lw.LowerExpr(&ast.Todo{Label: "unimplemented branch"}))
	assert.Equal(t, `erlang:error({ember_error, todo, "unimplemented branch"})`, got)
}

func TestLowerFnAllocatesFreshArgumentNames(t *testing.T) {
	lw := NewLowerer()
	fn := &ast.Fn{
		Arguments: []ast.Argument{{Name: "x"}},
		Body:      []ast.Expression{&ast.Var{Name: "x", Constructor: ast.ValueConstructor{Origin: ast.OriginLocal}}},
	}
	got := render(t, lw.LowerExpr(fn))
	assert.Equal(t, "fun(X) ->\n    X\nend", got)
}
