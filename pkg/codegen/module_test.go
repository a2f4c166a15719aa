package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberlang/ember/pkg/ast"
)

func TestEmitModuleHeaderAndCompileDirective(t *testing.T) {
	mod := &ast.Module{Name: []string{"my", "app"}}
	got := render(t, EmitModule(mod))
	assert.Contains(t, got, "-module(my@app).")
	assert.Contains(t, got, "-compile(no_auto_import).")
}

func TestEmitModuleEscapesReservedSegmentWithSuffix(t *testing.T) {
	mod := &ast.Module{Name: []string{"end", "util"}}
	got := render(t, EmitModule(mod))
	assert.Contains(t, got, "-module(end_@util).")
}

func TestEmitModuleExportsOnlyPublicFunctions(t *testing.T) {
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.Function{Publicity: ast.Public, Name: "go", Arguments: []ast.Argument{{Name: "x"}}, Body: []ast.Expression{&ast.Int{Value: "1"}}},
			&ast.Function{Publicity: ast.Private, Name: "helper", Body: []ast.Expression{&ast.Int{Value: "1"}}},
		},
	}
	got := render(t, EmitModule(mod))
	assert.Contains(t, got, "-export([go/1]).")
	assert.NotContains(t, got, "helper/0")
}

func TestEmitModuleOmitsExportListWhenNothingPublic(t *testing.T) {
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.Function{Publicity: ast.Private, Name: "helper", Body: []ast.Expression{&ast.Int{Value: "1"}}},
		},
	}
	got := render(t, EmitModule(mod))
	assert.NotContains(t, got, "-export(")
}

func TestEmitModuleSkipsTypeAliasCustomTypeAndImport(t *testing.T) {
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.Import{Module: []string{"gleam", "io"}},
			&ast.TypeAlias{Publicity: ast.Public, Name: "Id"},
			&ast.CustomType{Publicity: ast.Public, Name: "Box"},
			&ast.ModuleConstant{Publicity: ast.Public, Name: "zero", Value: &ast.Int{Value: "0"}},
		},
	}
	got := render(t, EmitModule(mod))
	assert.NotContains(t, got, "Id")
	assert.NotContains(t, got, "Box")
	assert.NotContains(t, got, "zero")
}

func TestEmitFunctionBody(t *testing.T) {
	f := &ast.Function{
		Publicity: ast.Public, Name: "add",
		Arguments: []ast.Argument{{Name: "a"}, {Name: "b"}},
		Body: []ast.Expression{&ast.BinOp{
			Kind: ast.AddInt, Left: varLocal("a"), Right: varLocal("b"),
		}},
	}
	got := render(t, emitFunction(f))
	assert.Equal(t, "add(A, B) ->\n    A + B.", got)
}

func TestEmitExternalFunctionWrapperIsPublicOnly(t *testing.T) {
	pub := &ast.ExternalFunction{Publicity: ast.Public, Name: "now", Module: "erlang", Function: "now", Arity: 0}
	assert.Equal(t, "now() -> erlang:now().", render(t, emitExternalFunctionWrapper(pub)))

	priv := &ast.ExternalFunction{Publicity: ast.Private, Name: "secret", Module: "erlang", Function: "x", Arity: 0}
	assert.True(t, emitStatement(priv).IsNil())
}
