package doc

import "github.com/pkg/errors"

// Writer is the only resource the pretty printer touches: a single
// operation that accepts a UTF-8 string slice and may fail with an I/O
// error.
type Writer interface {
	WriteString(s string) error
}

// mode is the layout decision in force for a work-list item.
type mode int

const (
	unbroken mode = iota
	broken
)

// item is one entry of the printer's work list: render doc under indent
// spaces of padding and the given mode.
type item struct {
	indent int
	mode   mode
	doc    Doc
}

// Print renders root to w, wrapping groups at column limit width. It is
// the sole place the core can fail: a Writer error is wrapped with the
// column at which it occurred and returned to the caller.
func Print(w Writer, root Doc, width int) error {
	p := &printer{w: w, width: width}
	p.list = append(p.list, item{indent: 0, mode: unbroken, doc: root})
	return p.run()
}

// ToString renders root at width into an in-memory string Writer;
// convenient for tests and for codegen.GenerateWidth.
func ToString(root Doc, width int) (string, error) {
	var sb stringBuilderWriter
	if err := Print(&sb, root, width); err != nil {
		return "", err
	}
	return string(sb), nil
}

type stringBuilderWriter string

func (s *stringBuilderWriter) WriteString(str string) error {
	*s += stringBuilderWriter(str)
	return nil
}

type printer struct {
	w      Writer
	width  int
	column int
	list   []item
}

func (p *printer) run() error {
	for len(p.list) > 0 {
		it := p.list[0]
		p.list = p.list[1:]
		if err := p.step(it); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) step(it item) error {
	switch it.doc.kind {
	case KindNil, KindForceBreak:
		return nil

	case KindString:
		if it.doc.str == "" {
			return nil
		}
		if err := p.w.WriteString(it.doc.str); err != nil {
			return errors.Wrapf(err, "pretty printer write at column %d", p.column)
		}
		p.column += len(it.doc.str)
		return nil

	case KindLine:
		if err := p.w.WriteString(newlinesAndIndent(it.doc.lines, it.indent)); err != nil {
			return errors.Wrapf(err, "pretty printer write at column %d", p.column)
		}
		p.column = it.indent
		return nil

	case KindBreak:
		if it.mode == unbroken {
			if it.doc.unbroken == "" {
				return nil
			}
			if err := p.w.WriteString(it.doc.unbroken); err != nil {
				return errors.Wrapf(err, "pretty printer write at column %d", p.column)
			}
			p.column += len(it.doc.unbroken)
			return nil
		}
		text := it.doc.broken + newlinesAndIndent(1, it.indent)
		if err := p.w.WriteString(text); err != nil {
			return errors.Wrapf(err, "pretty printer write at column %d", p.column)
		}
		p.column = it.indent
		return nil

	case KindVec:
		// Prepend in reverse so children[0] processes next under the
		// current (indent, mode).
		rest := make([]item, 0, len(it.doc.children)+len(p.list))
		for _, c := range it.doc.children {
			rest = append(rest, item{indent: it.indent, mode: it.mode, doc: c})
		}
		p.list = append(rest, p.list...)
		return nil

	case KindNest:
		p.list = append([]item{{indent: it.indent + it.doc.indent, mode: it.mode, doc: *it.doc.inner}}, p.list...)
		return nil

	case KindNestCurrent:
		p.list = append([]item{{indent: p.column, mode: it.mode, doc: *it.doc.inner}}, p.list...)
		return nil

	case KindGroup, KindFlexBreak:
		seed := item{indent: it.indent, mode: unbroken, doc: *it.doc.inner}
		if fits(p.width-p.column, seed, p.list) {
			p.list = append([]item{seed}, p.list...)
		} else {
			seed.mode = broken
			p.list = append([]item{seed}, p.list...)
		}
		return nil
	}
	return nil
}

func newlinesAndIndent(n, indent int) string {
	out := make([]byte, 0, n+indent)
	for i := 0; i < n; i++ {
		out = append(out, '\n')
	}
	for i := 0; i < indent; i++ {
		out = append(out, ' ')
	}
	return string(out)
}

// fits is the lookahead predicate: identical traversal to step, but
// boolean and bounded. It consults the printer's
// remaining work list (rest) only far enough to hit the next Line, any
// Break under broken mode, or the end of the list — so lookahead cost is
// bounded by the unbroken prefix ahead of the next break, never the whole
// remaining document.
func fits(limit int, seed item, rest []item) bool {
	list := append([]item{seed}, rest...)
	for len(list) > 0 {
		if limit < 0 {
			return false
		}
		it := list[0]
		list = list[1:]

		switch it.doc.kind {
		case KindNil:
			continue
		case KindForceBreak:
			return false
		case KindLine:
			return true
		case KindString:
			limit -= len(it.doc.str)
		case KindBreak:
			if it.mode == broken {
				return true
			}
			limit -= len(it.doc.unbroken)
		case KindVec:
			items := make([]item, len(it.doc.children))
			for i, c := range it.doc.children {
				items[i] = item{indent: it.indent, mode: it.mode, doc: c}
			}
			list = append(items, list...)
		case KindNest:
			list = append([]item{{indent: it.indent + it.doc.indent, mode: it.mode, doc: *it.doc.inner}}, list...)
		case KindNestCurrent:
			// Column tracking during the fit check is not needed: the
			// lookahead never emits, so indent only matters once a Line
			// is reached, at which point fits already returned true.
			list = append([]item{{indent: it.indent, mode: it.mode, doc: *it.doc.inner}}, list...)
		case KindGroup, KindFlexBreak:
			// A group can always be tried flat inside another group's fit
			// check.
			list = append([]item{{indent: it.indent, mode: unbroken, doc: *it.doc.inner}}, list...)
		}
	}
	return true
}
