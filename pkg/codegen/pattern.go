package codegen

import (
	"github.com/emberlang/ember/pkg/ast"
	"github.com/emberlang/ember/pkg/doc"
	"github.com/emberlang/ember/pkg/names"
)

// LowerPattern translates one typed pattern node into a Doc. Binding-site
// patterns (Var, Assign) allocate a fresh generation via
// NextLocalVarName; VarCall references an already-bound variable in the
// same pattern row via LocalVarName.
func (lw *Lowerer) LowerPattern(p ast.Pattern) doc.Doc {
	switch n := p.(type) {
	case *ast.PatternDiscard:
		return doc.Str("_")
	case *ast.PatternVar:
		return doc.Str(lw.env.NextLocalVarName(n.Name))
	case *ast.PatternVarCall:
		return doc.Str(lw.env.LocalVarName(n.Name))
	case *ast.PatternAssign:
		inner := lw.LowerPattern(n.Pattern)
		return doc.Concat(inner, doc.Str(" = "+lw.env.NextLocalVarName(n.Name)))
	case *ast.PatternInt:
		return doc.Str(names.Int(n.Value))
	case *ast.PatternFloat:
		return doc.Str(names.Float(n.Value))
	case *ast.PatternString:
		return stringLiteralDoc(n.Value)
	case *ast.PatternTuple:
		docs := make([]doc.Doc, len(n.Elements))
		for i, el := range n.Elements {
			docs[i] = lw.LowerPattern(el)
		}
		return doc.Concat(doc.Str("{"), joinComma(docs), doc.Str("}"))
	case *ast.PatternConstructor:
		tag := names.Atom(names.SnakeCase(n.ConstructorName))
		if len(n.Arguments) == 0 {
			return doc.Str(tag)
		}
		docs := make([]doc.Doc, len(n.Arguments))
		for i, a := range n.Arguments {
			docs[i] = lw.LowerPattern(a)
		}
		return doc.Concat(doc.Str("{"+tag+", "), joinComma(docs), doc.Str("}"))
	case *ast.PatternList:
		return lw.lowerListPattern(n)
	case *ast.PatternBitString:
		return lw.emitBitStringSegments(patternSegmentsToNodes(n.Segments), false)
	default:
		bug("unsupported pattern node in lowering", p)
		return doc.Nil()
	}
}

func (lw *Lowerer) lowerListPattern(p *ast.PatternList) doc.Doc {
	docs := make([]doc.Doc, len(p.Elements))
	for i, el := range p.Elements {
		docs[i] = lw.LowerPattern(el)
	}
	if p.Tail == nil {
		return doc.Concat(doc.Str("["), joinComma(docs), doc.Str("]"))
	}
	tailDoc := lw.LowerPattern(p.Tail)
	return doc.Concat(doc.Str("["), joinComma(docs), doc.Str(" | "), tailDoc, doc.Str("]"))
}

// patternSegmentsToNodes is a passthrough: BitStringSegment already stores
// Value as a Node, so pattern and expression segments share one emitter.
func patternSegmentsToNodes(segs []ast.BitStringSegment) []ast.BitStringSegment {
	return segs
}
