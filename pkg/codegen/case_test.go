package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberlang/ember/pkg/ast"
)

func TestLowerCaseSingleSubjectSingleClause(t *testing.T) {
	lw := NewLowerer()
	c := &ast.Case{
		Subjects: []ast.Expression{varLocal("x")},
		Clauses: []ast.Clause{
			{Patterns: []ast.Pattern{&ast.PatternInt{Value: "0"}}, Body: &ast.Int{Value: "1"}},
		},
	}
	got := render(t, lw.LowerExpr(c))
	assert.Equal(t, "case X of\n    0 ->\n        1\nend", got)
}

// A single subject with alternative patterns renders bare (not
// tuple-wrapped) patterns on every clause row, even though the clause has
// more than one alternative — tuple-wrapping only follows multi-subject
// cases, not multi-alternative ones.
func TestLowerCaseAlternativePatternsStayBareUnderSingleSubject(t *testing.T) {
	lw := NewLowerer()
	c := &ast.Case{
		Subjects: []ast.Expression{varLocal("x")},
		Clauses: []ast.Clause{
			{
				Patterns: []ast.Pattern{&ast.PatternInt{Value: "1"}},
				Alternatives: [][]ast.Pattern{
					{&ast.PatternInt{Value: "2"}},
					{&ast.PatternInt{Value: "3"}},
				},
				Body: &ast.String{Value: "small"},
			},
		},
	}
	got := render(t, lw.LowerExpr(c))
	assert.Contains(t, got, "1 ->")
	assert.Contains(t, got, "2 ->")
	assert.Contains(t, got, "3 ->")
	assert.NotContains(t, got, "{1}")
	assert.NotContains(t, got, "{2}")
}

func TestLowerCaseMultiSubjectTupleWraps(t *testing.T) {
	lw := NewLowerer()
	c := &ast.Case{
		Subjects: []ast.Expression{varLocal("x"), varLocal("y")},
		Clauses: []ast.Clause{
			{
				Patterns: []ast.Pattern{&ast.PatternInt{Value: "0"}, &ast.PatternInt{Value: "0"}},
				Body:     &ast.String{Value: "both zero"},
			},
		},
	}
	got := render(t, lw.LowerExpr(c))
	assert.Contains(t, got, "case {X, Y} of")
	assert.Contains(t, got, "{0, 0} ->")
}

func TestLowerClauseAlternativesReplayIdenticalBoundNames(t *testing.T) {
	lw := NewLowerer()
	c := &ast.Case{
		Subjects: []ast.Expression{varLocal("x")},
		Clauses: []ast.Clause{
			{
				Patterns: []ast.Pattern{&ast.PatternConstructor{
					ConstructorName: "Box",
					Arguments:       []ast.Pattern{&ast.PatternVar{Name: "n"}},
				}},
				Alternatives: [][]ast.Pattern{
					{&ast.PatternConstructor{
						ConstructorName: "Wrap",
						Arguments:       []ast.Pattern{&ast.PatternVar{Name: "n"}},
					}},
				},
				Body: varLocal("n"),
			},
		},
	}
	got := render(t, lw.LowerExpr(c))
	assert.Contains(t, got, "{box, N} ->")
	assert.Contains(t, got, "{wrap, N} ->")
}
