package codegen

import "fmt"

// Bug is an internal invariant violation: a shape in the typed AST that
// the type checker is assumed to have already ruled out. It is always
// raised with panic and recovered at the single package boundary,
// Generate; user code never observes a Bug value directly.
type Bug struct {
	Invariant string
	Node      any
}

func (b Bug) Error() string {
	return fmt.Sprintf("fatal compiler bug: %s (at %#v)", b.Invariant, b.Node)
}

// bug panics with a Bug describing the violated invariant. Every call site
// names the invariant and passes the offending node, so the message is
// actionable without a stack trace.
func bug(invariant string, node any) {
	panic(Bug{Invariant: invariant, Node: node})
}
