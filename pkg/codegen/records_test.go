package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/ast"
)

func TestExtractRecordsEmitsHeaderForLabelledConstructor(t *testing.T) {
	mod := &ast.Module{
		Statements: []ast.Statement{
			&ast.CustomType{
				Publicity: ast.Public,
				Name:      "Box",
				Constructors: []ast.Constructor{
					{Name: "Box", Fields: []ast.ConstructorField{{Label: "value"}}},
				},
			},
		},
	}
	headers := ExtractRecords(mod)
	require.Len(t, headers, 1)
	assert.Equal(t, "Box", headers[0].ConstructorName)
	assert.Equal(t, "-record(box, {value}).\n", headers[0].Text)
}

func TestExtractRecordsSkipsUnlabelledConstructor(t *testing.T) {
	mod := &ast.Module{
		Statements: []ast.Statement{
			&ast.CustomType{
				Publicity: ast.Public,
				Name:      "Pair",
				Constructors: []ast.Constructor{
					{Name: "Pair", Fields: []ast.ConstructorField{{Label: ""}, {Label: ""}}},
				},
			},
		},
	}
	assert.Empty(t, ExtractRecords(mod))
}

func TestExtractRecordsSkipsPrivateCustomType(t *testing.T) {
	mod := &ast.Module{
		Statements: []ast.Statement{
			&ast.CustomType{
				Publicity: ast.Private,
				Name:      "Secret",
				Constructors: []ast.Constructor{
					{Name: "Secret", Fields: []ast.ConstructorField{{Label: "value"}}},
				},
			},
		},
	}
	assert.Empty(t, ExtractRecords(mod))
}

func TestExtractRecordsSkipsZeroArityConstructor(t *testing.T) {
	mod := &ast.Module{
		Statements: []ast.Statement{
			&ast.CustomType{
				Publicity:    ast.Public,
				Name:         "Flag",
				Constructors: []ast.Constructor{{Name: "On"}, {Name: "Off"}},
			},
		},
	}
	assert.Empty(t, ExtractRecords(mod))
}
