// Package scope implements the per-function scope environment: fresh-name
// allocation and lookup under the target platform's single-assignment
// rule.
package scope

import "github.com/emberlang/ember/pkg/names"

// Environment tracks, for the duration of one top-level function
// definition, which generation of each source variable name is currently
// visible and which generation was most recently allocated anywhere in
// the function.
type Environment struct {
	// current holds the generation visible at the current point in the
	// function for each source name.
	current map[string]int
	// highest holds the highest generation ever allocated anywhere in the
	// function, so shadowing across sibling clauses never collides.
	highest map[string]int
}

// New returns an empty Environment for a fresh function definition.
func New() *Environment {
	return &Environment{current: map[string]int{}, highest: map[string]int{}}
}

// LocalVarName renders the current generation of x without allocating a
// new one: generation 0 renders bare, any other generation renders
// `Capitalize(x)@g`.
func (e *Environment) LocalVarName(x string) string {
	g, seen := e.current[x]
	if !seen {
		e.current[x] = 0
		if _, used := e.highest[x]; !used {
			e.highest[x] = 0
		}
		g = 0
	}
	return render(x, g)
}

// NextLocalVarName allocates a fresh generation for x — the highest
// generation seen anywhere in the function so far, plus one, or 0 when no
// generation of x has been allocated yet — and renders it. This is the
// pattern-binding-site operation.
func (e *Environment) NextLocalVarName(x string) string {
	g, used := e.highest[x]
	if used {
		g++
	}
	e.current[x] = g
	e.highest[x] = g
	return render(x, g)
}

func render(x string, g int) string {
	cap := names.Capitalize(x)
	if g == 0 {
		return cap
	}
	return cap + "@" + itoa(g)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// FunctionScopeSnapshot is an opaque copy of the "highest generation ever
// allocated" map, taken on entry to a case clause so every alternative
// pattern replays from the same starting point.
type FunctionScopeSnapshot map[string]int

// SnapshotFunctionScope captures e.highest for later restoration between
// clause alternatives.
func (e *Environment) SnapshotFunctionScope() FunctionScopeSnapshot {
	out := make(FunctionScopeSnapshot, len(e.highest))
	for k, v := range e.highest {
		out[k] = v
	}
	return out
}

// RestoreFunctionScope resets e.highest to a previously captured snapshot.
// Used between alternative patterns of the same clause so each alternative
// allocates the same generation numbers.
func (e *Environment) RestoreFunctionScope(snap FunctionScopeSnapshot) {
	e.highest = make(map[string]int, len(snap))
	for k, v := range snap {
		e.highest[k] = v
	}
}

// CurrentScopeSnapshot is an opaque copy of the "currently visible
// generation" map, taken on entry to a case expression.
type CurrentScopeSnapshot map[string]int

// SnapshotCurrentScope captures e.current.
func (e *Environment) SnapshotCurrentScope() CurrentScopeSnapshot {
	out := make(CurrentScopeSnapshot, len(e.current))
	for k, v := range e.current {
		out[k] = v
	}
	return out
}

// RestoreCurrentScope resets e.current to a previously captured snapshot
// on exit from a case expression — but never touches e.highest, so names
// bound inside the clause stay "used" for future fresh-name allocations
// even though they are no longer visible.
func (e *Environment) RestoreCurrentScope(snap CurrentScopeSnapshot) {
	e.current = make(map[string]int, len(snap))
	for k, v := range snap {
		e.current[k] = v
	}
}
