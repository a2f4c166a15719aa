package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/emberlang/ember/pkg/ast"
)

func decodePattern(raw json.RawMessage) (ast.Pattern, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("decoding pattern: empty raw message")
	}
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "patternVar":
		var w struct {
			Name     string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternVar{Name: w.Name, Position: w.Position}, nil
	case "patternVarCall":
		var w struct {
			Name     string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternVarCall{Name: w.Name, Position: w.Position}, nil
	case "patternDiscard":
		var w struct{ Position int }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternDiscard{Position: w.Position}, nil
	case "patternAssign":
		var w struct {
			Pattern  json.RawMessage
			Name     string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		inner, err := decodePattern(w.Pattern)
		if err != nil {
			return nil, err
		}
		return &ast.PatternAssign{Pattern: inner, Name: w.Name, Position: w.Position}, nil
	case "patternInt":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternInt{Value: w.Value, Position: w.Position}, nil
	case "patternFloat":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternFloat{Value: w.Value, Position: w.Position}, nil
	case "patternString":
		var w struct {
			Value    string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.PatternString{Value: w.Value, Position: w.Position}, nil
	case "patternTuple":
		var w struct {
			Elements []json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elements, err := decodePatterns(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.PatternTuple{Elements: elements, Position: w.Position}, nil
	case "patternConstructor":
		var w struct {
			ConstructorName string
			Arguments       []json.RawMessage
			Position        int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		args, err := decodePatterns(w.Arguments)
		if err != nil {
			return nil, err
		}
		return &ast.PatternConstructor{ConstructorName: w.ConstructorName, Arguments: args, Position: w.Position}, nil
	case "patternList":
		var w struct {
			Elements []json.RawMessage
			Tail     json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elements, err := decodePatterns(w.Elements)
		if err != nil {
			return nil, err
		}
		var tail ast.Pattern
		if len(w.Tail) > 0 {
			tail, err = decodePattern(w.Tail)
			if err != nil {
				return nil, err
			}
		}
		return &ast.PatternList{Elements: elements, Tail: tail, Position: w.Position}, nil
	case "patternBitString":
		var w struct {
			Segments []wireBitStringSegment
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		segments, err := decodeBitStringSegments(w.Segments, true)
		if err != nil {
			return nil, err
		}
		return &ast.PatternBitString{Segments: segments, Position: w.Position}, nil
	default:
		return nil, fmt.Errorf("unknown pattern kind %q", kind)
	}
}

type wireBitStringSegment struct {
	Value   json.RawMessage
	Size    json.RawMessage
	Unit    json.RawMessage
	Options []string
}

var segmentOptions = map[string]ast.SegmentOption{
	"integer": ast.OptInteger, "float": ast.OptFloat,
	"binary": ast.OptBinary, "bitstring": ast.OptBitString,
	"utf8": ast.OptUTF8, "utf16": ast.OptUTF16, "utf32": ast.OptUTF32,
	"utf8Codepoint": ast.OptUTF8Codepoint, "utf16Codepoint": ast.OptUTF16Codepoint, "utf32Codepoint": ast.OptUTF32Codepoint,
	"signed": ast.OptSigned, "unsigned": ast.OptUnsigned,
	"big": ast.OptBig, "little": ast.OptLittle, "native": ast.OptNative,
}

func decodeBitStringSegments(ws []wireBitStringSegment, isPattern bool) ([]ast.BitStringSegment, error) {
	out := make([]ast.BitStringSegment, len(ws))
	for i, w := range ws {
		seg, err := w.toSegment(isPattern)
		if err != nil {
			return nil, err
		}
		out[i] = seg
	}
	return out, nil
}

func (w wireBitStringSegment) toSegment(isPattern bool) (ast.BitStringSegment, error) {
	var value ast.Node
	var err error
	if isPattern {
		value, err = decodePattern(w.Value)
	} else {
		value, err = decodeExpression(w.Value)
	}
	if err != nil {
		return ast.BitStringSegment{}, err
	}

	var size ast.Expression
	if len(w.Size) > 0 {
		size, err = decodeExpression(w.Size)
		if err != nil {
			return ast.BitStringSegment{}, err
		}
	}

	var unit ast.Expression
	if len(w.Unit) > 0 {
		unit, err = decodeExpression(w.Unit)
		if err != nil {
			return ast.BitStringSegment{}, err
		}
	}

	opts := make([]ast.SegmentOption, len(w.Options))
	for i, o := range w.Options {
		opt, ok := segmentOptions[o]
		if !ok {
			return ast.BitStringSegment{}, fmt.Errorf("unknown bit-string segment option %q", o)
		}
		opts[i] = opt
	}

	return ast.BitStringSegment{Value: value, Size: size, Unit: unit, Options: opts}, nil
}
