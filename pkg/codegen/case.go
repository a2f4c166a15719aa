package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
)

// lowerCase renders a case expression: one subject renders as its
// expression, multiple subjects render as a tuple; each clause renders its
// patterns, an optional guard and a body; alternative patterns expand to
// sibling clauses sharing a syntactically identical body.
func (lw *Lowerer) lowerCase(c *ast.Case) doc.Doc {
	preCaseScope := lw.env.SnapshotCurrentScope()

	subjectDoc := lw.lowerSubjects(c.Subjects)
	multiSubject := len(c.Subjects) > 1

	clauseDocs := make([]doc.Doc, 0, len(c.Clauses))
	for _, clause := range c.Clauses {
		clauseDocs = append(clauseDocs, lw.lowerClause(clause, multiSubject))
	}

	lw.env.RestoreCurrentScope(preCaseScope)

	body := joinSemicolonLines(clauseDocs)
	return doc.Concat(
		doc.Str("case "), subjectDoc, doc.Str(" of"),
		doc.Line().Nest(4), body.Nest(4),
		doc.Line(), doc.Str("end"),
	).Group()
}

func (lw *Lowerer) lowerSubjects(subjects []ast.Expression) doc.Doc {
	if len(subjects) == 1 {
		return lw.LowerExpr(subjects[0])
	}
	docs := make([]doc.Doc, len(subjects))
	for i, s := range subjects {
		docs[i] = lw.LowerExpr(s)
	}
	return doc.Concat(doc.Str("{"), joinComma(docs), doc.Str("}"))
}

func joinSemicolonLines(docs []doc.Doc) doc.Doc {
	out := make([]doc.Doc, 0, len(docs)*3)
	for i, d := range docs {
		if i > 0 {
			out = append(out, doc.Str(";"), doc.Line())
		}
		out = append(out, d)
	}
	return doc.Concat(out...)
}

// lowerClause renders alternative patterns: for a clause with
// alternatives sharing body B, emit n+1 sibling clause texts
// whose bodies are syntactically identical copies of B, re-running
// pattern lowering from the same function_scope_vars snapshot so each
// alternative produces the same capitalized names. The body (and guard)
// document is computed once, under the first (primary) pattern row, and
// reused — safe because the snapshot/restore dance guarantees every
// alternative binds the same source names to the same generations.
func (lw *Lowerer) lowerClause(clause ast.Clause, multiSubject bool) doc.Doc {
	funcSnap := lw.env.SnapshotFunctionScope()
	curSnap := lw.env.SnapshotCurrentScope()

	primaryDoc := lw.lowerPatternRow(clause.Patterns, multiSubject)
	var guardDoc doc.Doc
	if clause.Guard != nil {
		guardDoc = lw.LowerExpr(clause.Guard)
	}
	bodyDoc := lw.LowerExpr(clause.Body)

	rows := []doc.Doc{clauseText(primaryDoc, guardDoc, clause.Guard != nil, bodyDoc)}
	for _, alt := range clause.Alternatives {
		lw.env.RestoreFunctionScope(funcSnap)
		lw.env.RestoreCurrentScope(curSnap)
		altDoc := lw.lowerPatternRow(alt, multiSubject)
		rows = append(rows, clauseText(altDoc, guardDoc, clause.Guard != nil, bodyDoc))
	}

	return joinSemicolonLines(rows)
}

func (lw *Lowerer) lowerPatternRow(patterns []ast.Pattern, tupleWrap bool) doc.Doc {
	if len(patterns) == 1 && !tupleWrap {
		return lw.LowerPattern(patterns[0])
	}
	docs := make([]doc.Doc, len(patterns))
	for i, p := range patterns {
		docs[i] = lw.LowerPattern(p)
	}
	return doc.Concat(doc.Str("{"), joinComma(docs), doc.Str("}"))
}

func clauseText(patternDoc, guardDoc doc.Doc, hasGuard bool, bodyDoc doc.Doc) doc.Doc {
	head := patternDoc
	if hasGuard {
		head = doc.Concat(head, doc.Str(" when "), guardDoc)
	}
	return doc.Concat(
		head, doc.Str(" ->"),
		doc.Line().Nest(4), bodyDoc.Nest(4),
	)
}
