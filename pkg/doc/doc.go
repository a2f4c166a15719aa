// Package doc implements the generic pretty-printing document model: an
// algebraic representation of formatting intent, based on Lindig's
// "Strictly Pretty" algorithm and extended with forced breaks and flex
// breaks.
package doc

// Kind discriminates the Doc variants. Doc is a closed sum type; every
// field below is only meaningful for the Kinds that document so.
type Kind int

const (
	KindNil Kind = iota
	KindLine
	KindForceBreak
	KindBreak
	KindVec
	KindNest
	KindNestCurrent
	KindGroup
	KindFlexBreak
	KindString
)

// Doc is a node in the document tree. Trees built through the constructors
// below share subtrees by reference (Doc is a plain value but children is
// a slice header, so copies are cheap and Append/Group/etc. never deep
// clone) — this is what makes alternative-pattern body reuse and the pretty printer's own traversal
// affordable.
type Doc struct {
	kind Kind

	// KindLine
	lines int

	// KindBreak
	broken, unbroken string

	// KindVec
	children []Doc

	// KindNest
	indent int
	inner  *Doc

	// KindString
	str string
}

// Nil is the empty document.
func Nil() Doc { return Doc{kind: KindNil} }

// Line is a single mandatory newline followed by indent padding.
func Line() Doc { return Lines(1) }

// Lines is n mandatory newlines followed by indent padding.
func Lines(n int) Doc { return Doc{kind: KindLine, lines: n} }

// ForceBreakDoc forces any enclosing Group to render broken.
func ForceBreakDoc() Doc { return Doc{kind: KindForceBreak} }

// Break renders unbroken when its enclosing group fits on the line,
// otherwise broken followed by a newline and indent padding.
func Break(broken, unbroken string) Doc {
	return Doc{kind: KindBreak, broken: broken, unbroken: unbroken}
}

// Str is borrowed literal text (alias for String; kept as a separate name
// since Lindig's formulation distinguishes a borrowed and an owned string
// variant — Go has no such distinction, so both constructors produce the
// same Doc).
func Str(s string) Doc { return Doc{kind: KindString, str: s} }

// String is owned literal text.
func String(s string) Doc { return Str(s) }

// Concat builds a Vec out of docs, flattening any that are themselves Vecs
// so Append/Concat never nest Vec-of-Vec arbitrarily deep.
func Concat(docs ...Doc) Doc {
	out := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d.kind == KindVec {
			out = append(out, d.children...)
			continue
		}
		if d.kind == KindNil {
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return Nil()
	}
	if len(out) == 1 {
		return out[0]
	}
	return Doc{kind: KindVec, children: out}
}

// Append merges other into the receiver, producing a Vec when both sides
// have content.
func (d Doc) Append(other Doc) Doc {
	return Concat(d, other)
}

// Nest increases indent by k for inner.
func (d Doc) Nest(k int) Doc {
	if d.kind == KindNil {
		return d
	}
	inner := d
	return Doc{kind: KindNest, indent: k, inner: &inner}
}

// NestCurrent sets indent to the current column (measured at emission
// time, not construction time — see the pretty printer's NestCurrent
// handling) for inner.
func (d Doc) NestCurrent() Doc {
	if d.kind == KindNil {
		return d
	}
	inner := d
	return Doc{kind: KindNestCurrent, inner: &inner}
}

// Group marks inner as a single layout-decision unit: rendered entirely
// unbroken if it fits the remaining column budget, otherwise entirely
// broken.
func (d Doc) Group() Doc {
	inner := d
	return Doc{kind: KindGroup, inner: &inner}
}

// FlexBreak marks inner as a flex-break unit. The printer lays it out
// exactly as it lays out Group: one fit check decides the mode for every
// Break inside inner; Breaks are not decided one at a time.
func (d Doc) FlexBreak() Doc {
	inner := d
	return Doc{kind: KindFlexBreak, inner: &inner}
}

// Surround wraps d between open and close, e.g. `{`d`}`.
func (d Doc) Surround(open, close string) Doc {
	return Concat(Str(open), d, Str(close))
}

// IsNil reports whether d renders no output: Nil itself, an empty Vec, an
// empty string, or a Group/FlexBreak wrapping a nil document.
func (d Doc) IsNil() bool {
	switch d.kind {
	case KindNil:
		return true
	case KindVec:
		return len(d.children) == 0
	case KindString:
		return d.str == ""
	case KindGroup, KindFlexBreak:
		return d.inner.IsNil()
	default:
		return false
	}
}
