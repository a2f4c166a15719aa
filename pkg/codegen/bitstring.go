package codegen

import (
	"strings"

	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
)

var segmentOptionText = map[ast.SegmentOption]string{
	ast.OptInteger: "integer", ast.OptFloat: "float",
	ast.OptBinary: "binary", ast.OptBitString: "bitstring",
	ast.OptUTF8: "utf8", ast.OptUTF16: "utf16", ast.OptUTF32: "utf32",
	ast.OptUTF8Codepoint: "utf8", ast.OptUTF16Codepoint: "utf16", ast.OptUTF32Codepoint: "utf32",
	ast.OptSigned: "signed", ast.OptUnsigned: "unsigned",
	ast.OptBig: "big", ast.OptLittle: "little", ast.OptNative: "native",
}

func isUTFOption(o ast.SegmentOption) bool {
	switch o {
	case ast.OptUTF8, ast.OptUTF16, ast.OptUTF32, ast.OptUTF8Codepoint, ast.OptUTF16Codepoint, ast.OptUTF32Codepoint:
		return true
	default:
		return false
	}
}

// emitBitStringSegments delegates per segment to a segment emitter
// parameterised by value/size/unit sub-documents, sharing the
// options-to-type-specifier logic across the expression and pattern
// sides. isExpr distinguishes which node kinds a segment's Value may
// legally be.
func (lw *Lowerer) emitBitStringSegments(segments []ast.BitStringSegment, isExpr bool) doc.Doc {
	docs := make([]doc.Doc, len(segments))
	for i, seg := range segments {
		docs[i] = lw.emitSegment(seg, isExpr)
	}
	return doc.Concat(doc.Str("<<"), joinComma(docs), doc.Str(">>"))
}

func (lw *Lowerer) emitSegment(seg ast.BitStringSegment, isExpr bool) doc.Doc {
	if !isExpr {
		validatePatternSegmentValue(seg.Value)
	}

	isString := isStringLiteralNode(seg.Value)
	valueDoc := lw.emitSegmentValue(seg.Value, isExpr, isString, len(seg.Options) > 0 && segmentHasBinaryishOption(seg.Options))

	sizeDoc := lw.emitSegmentSize(seg.Size)
	unitDoc := emitSegmentUnit(seg.Unit)
	optionsDoc := emitSegmentOptions(seg.Options, isString)

	return doc.Concat(valueDoc, sizeDoc, unitDoc, optionsDoc)
}

func segmentHasBinaryishOption(opts []ast.SegmentOption) bool {
	for _, o := range opts {
		if o == ast.OptBinary || o == ast.OptBitString {
			return true
		}
	}
	return false
}

// emitSegmentValue renders the value document. A string literal value
// (expression or pattern side) is written as a raw quoted Erlang string
// `"…"`, not as a `<<"…"/utf8>>` binary, unless the segment carries a
// binary or bitstring option.
func (lw *Lowerer) emitSegmentValue(value ast.Node, isExpr, isString, binaryish bool) doc.Doc {
	if isString && !binaryish {
		switch v := value.(type) {
		case *ast.String:
			return rawStringDoc(v.Value)
		case *ast.PatternString:
			return rawStringDoc(v.Value)
		}
	}
	if isExpr {
		return lw.LowerExpr(value.(ast.Expression))
	}
	return lw.LowerPattern(value.(ast.Pattern))
}

func validatePatternSegmentValue(value ast.Node) {
	switch value.(type) {
	case *ast.PatternString, *ast.PatternDiscard, *ast.PatternVar, *ast.PatternInt, *ast.PatternFloat:
		return
	default:
		bug("bit-string pattern segment value must be String, Discard, Var, Int or Float", value)
	}
}

// emitSegmentSize renders `:S`, parenthesising S unless it is a bare
// literal.
func (lw *Lowerer) emitSegmentSize(size ast.Expression) doc.Doc {
	if size == nil {
		return doc.Nil()
	}
	sizeDoc := lw.LowerExpr(size)
	if !isLiteralExpr(size) {
		sizeDoc = sizeDoc.Surround("(", ")")
	}
	return doc.Concat(doc.Str(":"), sizeDoc)
}

func isLiteralExpr(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Int, *ast.Float:
		return true
	default:
		return false
	}
}

// emitSegmentUnit renders `unit:U`, only when U is an integer literal;
// anything else is Nil, since the target only accepts a literal unit.
func emitSegmentUnit(unit ast.Expression) doc.Doc {
	if unit == nil {
		return doc.Nil()
	}
	n, ok := unit.(*ast.Int)
	if !ok {
		return doc.Nil()
	}
	return doc.Str("unit:" + n.Value)
}

// emitSegmentOptions collects every non-size/non-unit option into an
// ordered list, joined with `-`, prefixed with `/` (omitted if empty).
// utf8/utf16/utf32 specifiers are replaced with `binary` when the value is
// not a string literal, since the target platform rejects non-codepoint
// values for utf specifiers.
func emitSegmentOptions(opts []ast.SegmentOption, isString bool) doc.Doc {
	if len(opts) == 0 {
		return doc.Nil()
	}
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		text, ok := segmentOptionText[o]
		if !ok {
			continue
		}
		if isUTFOption(o) && !isString {
			text = "binary"
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return doc.Nil()
	}
	return doc.Str("/" + strings.Join(parts, "-"))
}
