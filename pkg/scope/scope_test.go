package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstReferenceRendersBareCapitalized(t *testing.T) {
	env := New()
	assert.Equal(t, "X", env.LocalVarName("x"))
}

func TestNextLocalVarNameAllocatesFreshGeneration(t *testing.T) {
	env := New()
	assert.Equal(t, "X", env.NextLocalVarName("x"))
	assert.Equal(t, "X@1", env.NextLocalVarName("x"))
	assert.Equal(t, "X@2", env.NextLocalVarName("x"))
}

func TestLocalVarNameTracksCurrentGeneration(t *testing.T) {
	env := New()
	env.NextLocalVarName("x")
	env.NextLocalVarName("x") // now at generation 1
	assert.Equal(t, "X@1", env.LocalVarName("x"))
}

func TestLocalVarNameAllocatesGenerationZeroOnFirstUse(t *testing.T) {
	env := New()
	// A reference before any binding site still resolves, at generation 0.
	assert.Equal(t, "Y", env.LocalVarName("y"))
	assert.Equal(t, "Y", env.LocalVarName("y"))
}

func TestAlternativePatternsReplayIdenticalNames(t *testing.T) {
	env := New()
	env.NextLocalVarName("a") // simulate names bound before the case

	funcSnap := env.SnapshotFunctionScope()
	curSnap := env.SnapshotCurrentScope()
	first := env.NextLocalVarName("n")

	env.RestoreFunctionScope(funcSnap)
	env.RestoreCurrentScope(curSnap)
	second := env.NextLocalVarName("n")

	assert.Equal(t, first, second)
}

func TestRestoringOnlyFunctionScopeReplaysGeneration(t *testing.T) {
	env := New()
	snap := env.SnapshotFunctionScope()

	env.NextLocalVarName("n") // "N"
	env.RestoreFunctionScope(snap)

	// current["n"] was never rolled back, but fresh generations come from
	// highest alone, which no longer has an entry for "n" — so a second
	// binding site for the same source name reuses generation 0.
	got := env.NextLocalVarName("n")
	assert.Equal(t, "N", got)
}

func TestFunctionScopeSurvivesCaseExitForFreshAllocation(t *testing.T) {
	env := New()
	snapCurrent := env.SnapshotCurrentScope()

	env.NextLocalVarName("n") // bound inside the case clause

	env.RestoreCurrentScope(snapCurrent)

	// "n" is no longer a visible binding...
	assert.Equal(t, "N", env.LocalVarName("n"))
	// ...but a fresh allocation after the case must still skip the
	// generation used inside it (highest was never rolled back).
	env2 := New()
	env2.NextLocalVarName("n")
	snap2 := env2.SnapshotCurrentScope()
	env2.NextLocalVarName("n") // generation 1, inside the case
	env2.RestoreCurrentScope(snap2)
	assert.Equal(t, "N@2", env2.NextLocalVarName("n"))
}
