package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/emberlang/ember/pkg/ast"
)

func decodeExpressions(raws []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(raws))
	for i, raw := range raws {
		e, err := decodeExpression(raw)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeExpression(raw json.RawMessage) (ast.Expression, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("decoding expression: empty raw message")
	}
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "int":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.Int{Value: w.Value, Position: w.Position}, nil
	case "float":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.Float{Value: w.Value, Position: w.Position}, nil
	case "string":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.String{Value: w.Value, Position: w.Position}, nil
	case "var":
		var w struct {
			Name        string
			Constructor wireValueConstructor
			Position    int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		vc, err := w.Constructor.toValueConstructor()
		if err != nil {
			return nil, err
		}
		return &ast.Var{Name: w.Name, Constructor: vc, Position: w.Position}, nil
	case "seq":
		var w struct {
			First    json.RawMessage
			Then     json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		first, err := decodeExpression(w.First)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpression(w.Then)
		if err != nil {
			return nil, err
		}
		return &ast.Seq{First: first, Then: then, Position: w.Position}, nil
	case "let", "tryLet":
		var w struct {
			Pattern  json.RawMessage
			Value    json.RawMessage
			Then     json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		pat, err := decodePattern(w.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpression(w.Then)
		if err != nil {
			return nil, err
		}
		letKind := ast.LetRegular
		if kind == "tryLet" {
			letKind = ast.LetTry
		}
		return &ast.Let{Kind: letKind, Pattern: pat, Value: value, Then: then, Position: w.Position}, nil
	case "case":
		var w struct {
			Subjects []json.RawMessage
			Clauses  []wireClause
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		subjects, err := decodeExpressions(w.Subjects)
		if err != nil {
			return nil, err
		}
		clauses := make([]ast.Clause, len(w.Clauses))
		for i, c := range w.Clauses {
			clause, err := c.toClause()
			if err != nil {
				return nil, err
			}
			clauses[i] = clause
		}
		return &ast.Case{Subjects: subjects, Clauses: clauses, Position: w.Position}, nil
	case "fn":
		var w struct {
			Arguments  []wireArgument
			Body       []json.RawMessage
			ReturnType wireType
			IsCapture  bool
			CaptureVar string
			Position   int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		args, err := decodeArguments(w.Arguments)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpressions(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Fn{
			Arguments: args, Body: body, ReturnType: w.ReturnType.toType(),
			IsCapture: w.IsCapture, CaptureVar: w.CaptureVar, Position: w.Position,
		}, nil
	case "call":
		var w struct {
			Callee    json.RawMessage
			Arguments []json.RawMessage
			Position  int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(w.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: callee, Arguments: args, Position: w.Position}, nil
	case "recordConstruction":
		var w struct {
			ConstructorName string
			Fields          []json.RawMessage
			Position        int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields, err := decodeExpressions(w.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.RecordConstruction{ConstructorName: w.ConstructorName, Fields: fields, Position: w.Position}, nil
	case "recordAccess":
		var w struct {
			Record   json.RawMessage
			Index    int
			Label    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		record, err := decodeExpression(w.Record)
		if err != nil {
			return nil, err
		}
		return &ast.RecordAccess{Record: record, Index: w.Index, Label: w.Label, Position: w.Position}, nil
	case "recordUpdate":
		var w struct {
			Spread   json.RawMessage
			Changes  []wireRecordUpdateChange
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		spread, err := decodeExpression(w.Spread)
		if err != nil {
			return nil, err
		}
		changes := make([]ast.RecordUpdateChange, len(w.Changes))
		for i, c := range w.Changes {
			value, err := decodeExpression(c.Value)
			if err != nil {
				return nil, err
			}
			changes[i] = ast.RecordUpdateChange{Index: c.Index, Value: value}
		}
		return &ast.RecordUpdate{Spread: spread, Changes: changes, Position: w.Position}, nil
	case "tuple":
		var w struct {
			Elements []json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elements, err := decodeExpressions(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Elements: elements, Position: w.Position}, nil
	case "tupleIndex":
		var w struct {
			Tuple    json.RawMessage
			Index    int
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		tuple, err := decodeExpression(w.Tuple)
		if err != nil {
			return nil, err
		}
		return &ast.TupleIndex{Tuple: tuple, Index: w.Index, Position: w.Position}, nil
	case "listCons":
		var w struct {
			Head     json.RawMessage
			Tail     json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		head, err := decodeExpression(w.Head)
		if err != nil {
			return nil, err
		}
		tail, err := decodeExpression(w.Tail)
		if err != nil {
			return nil, err
		}
		return &ast.ListCons{Head: head, Tail: tail, Position: w.Position}, nil
	case "listNil":
		var w struct{ Position int }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.ListNil{Position: w.Position}, nil
	case "pipe":
		var w struct {
			Value    json.RawMessage
			Func     json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		fn, err := decodeExpression(w.Func)
		if err != nil {
			return nil, err
		}
		return &ast.Pipe{Value: value, Func: fn, Position: w.Position}, nil
	case "binOp":
		var w struct {
			Op       string
			Left     json.RawMessage
			Right    json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		opKind, ok := binOpKinds[w.Op]
		if !ok {
			return nil, fmt.Errorf("unknown binOp operator %q", w.Op)
		}
		left, err := decodeExpression(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Kind: opKind, Left: left, Right: right, Position: w.Position}, nil
	case "unary":
		var w struct {
			Op       string
			Operand  json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		operand, err := decodeExpression(w.Operand)
		if err != nil {
			return nil, err
		}
		unaryKind := ast.NegateNumber
		if w.Op == "not" {
			unaryKind = ast.NegateBool
		}
		return &ast.Unary{Kind: unaryKind, Operand: operand, Position: w.Position}, nil
	case "todo":
		var w struct {
			Label    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.Todo{Label: w.Label, Position: w.Position}, nil
	case "bitString":
		var w struct {
			Segments []wireBitStringSegment
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		segments, err := decodeBitStringSegments(w.Segments, false)
		if err != nil {
			return nil, err
		}
		return &ast.BitString{Segments: segments, Position: w.Position}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}

var binOpKinds = map[string]ast.BinOpKind{
	"addInt": ast.AddInt, "addFloat": ast.AddFloat,
	"subInt": ast.SubInt, "subFloat": ast.SubFloat,
	"multInt": ast.MultInt, "multFloat": ast.MultFloat,
	"divInt": ast.DivInt, "divFloat": ast.DivFloat,
	"moduloInt": ast.ModuloInt,
	"eq":        ast.Eq, "notEq": ast.NotEq,
	"ltInt": ast.LtInt, "ltFloat": ast.LtFloat,
	"ltEqInt": ast.LtEqInt, "ltEqFloat": ast.LtEqFloat,
	"gtInt": ast.GtInt, "gtFloat": ast.GtFloat,
	"gtEqInt": ast.GtEqInt, "gtEqFloat": ast.GtEqFloat,
	"and": ast.And, "or": ast.Or,
}

type wireRecordUpdateChange struct {
	Index int
	Value json.RawMessage
}

type wireValueConstructor struct {
	Origin string
	Type   wireType
	Module string
	Record *wireRecordConstructorInfo
}

type wireRecordConstructorInfo struct {
	Name   string
	Fields []wireField
}

func (w wireValueConstructor) toValueConstructor() (ast.ValueConstructor, error) {
	vc := ast.ValueConstructor{Type: w.Type.toType(), Module: w.Module}
	switch w.Origin {
	case "local":
		vc.Origin = ast.OriginLocal
	case "moduleFunction":
		vc.Origin = ast.OriginModuleFunction
	case "moduleConstant":
		vc.Origin = ast.OriginModuleConstant
	case "record":
		vc.Origin = ast.OriginRecord
	default:
		return vc, fmt.Errorf("unknown value-constructor origin %q", w.Origin)
	}
	if w.Record != nil {
		fields := make([]ast.ConstructorField, len(w.Record.Fields))
		for i, f := range w.Record.Fields {
			fields[i] = ast.ConstructorField{Label: f.Label, Type: f.Type.toType()}
		}
		vc.Record = &ast.RecordConstructorInfo{Name: w.Record.Name, Fields: fields}
	}
	return vc, nil
}

type wireClause struct {
	Patterns     []json.RawMessage
	Alternatives [][]json.RawMessage
	Guard        json.RawMessage
	Body         json.RawMessage
	Position     int
}

func decodePatterns(raws []json.RawMessage) ([]ast.Pattern, error) {
	out := make([]ast.Pattern, len(raws))
	for i, raw := range raws {
		p, err := decodePattern(raw)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (w wireClause) toClause() (ast.Clause, error) {
	patterns, err := decodePatterns(w.Patterns)
	if err != nil {
		return ast.Clause{}, err
	}
	alts := make([][]ast.Pattern, len(w.Alternatives))
	for i, alt := range w.Alternatives {
		decoded, err := decodePatterns(alt)
		if err != nil {
			return ast.Clause{}, err
		}
		alts[i] = decoded
	}
	var guard ast.Expression
	if len(w.Guard) > 0 {
		guard, err = decodeExpression(w.Guard)
		if err != nil {
			return ast.Clause{}, err
		}
	}
	body, err := decodeExpression(w.Body)
	if err != nil {
		return ast.Clause{}, err
	}
	return ast.Clause{Patterns: patterns, Alternatives: alts, Guard: guard, Body: body, Position: w.Position}, nil
}
