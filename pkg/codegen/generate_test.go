package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/ast"
)

func TestGenerateProducesModuleTextAndRecordHeaders(t *testing.T) {
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.CustomType{
				Publicity: ast.Public,
				Name:      "Box",
				Constructors: []ast.Constructor{
					{Name: "Box", Fields: []ast.ConstructorField{{Label: "value"}}},
				},
			},
			&ast.Function{
				Publicity: ast.Public, Name: "one",
				Body: []ast.Expression{&ast.Int{Value: "1"}},
			},
		},
	}
	got, err := Generate(mod)
	require.NoError(t, err)
	assert.Contains(t, got.ModuleText, "-module(m).")
	assert.Contains(t, got.ModuleText, "one() ->")
	require.Len(t, got.RecordHeaders, 1)
	assert.Equal(t, "-record(box, {value}).\n", got.RecordHeaders[0].Text)
}

func TestGenerateWidthNarrowerColumnStillProducesValidOutput(t *testing.T) {
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.Function{
				Publicity: ast.Public, Name: "one",
				Body: []ast.Expression{&ast.Int{Value: "1"}},
			},
		},
	}
	got, err := GenerateWidth(mod, 10)
	require.NoError(t, err)
	assert.Contains(t, got.ModuleText, "one() ->")
}

// A record-origin Var with no attached RecordConstructorInfo is an internal
// invariant violation; Generate must recover the panic and return an error
// instead of letting it escape, discarding any partial output.
func TestGenerateRecoversInternalBugAsError(t *testing.T) {
	badVar := &ast.Var{
		Name:        "ctor",
		Constructor: ast.ValueConstructor{Origin: ast.OriginRecord},
	}
	mod := &ast.Module{
		Name: []string{"m"},
		Statements: []ast.Statement{
			&ast.Function{
				Publicity: ast.Public, Name: "bad",
				Body: []ast.Expression{badVar},
			},
		},
	}
	got, err := Generate(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal compiler bug")
	assert.Equal(t, Generated{}, got)
}
