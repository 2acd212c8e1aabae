package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Luis23345432/Compi-Parser/internal/grammar"
)

func buildGrammar(t *testing.T, text string) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	if !g.Load(text, nil) {
		t.Fatalf("grammar failed to load: %q", text)
	}
	return g
}

func TestBuild_ClassicGrammar_NoConflicts(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> C C
		C -> c C | d
	`)

	table := Build(g)

	assert.Equal(10, table.NumStates)
	assert.Empty(table.Conflicts)

	start := table.StateNums[table.DFA.Start()]
	assert.Equal(LRShift, table.Action(start, "c").Type)
	assert.Equal(LRShift, table.Action(start, "d").Type)
	assert.Equal(LRError, table.Action(start, "$").Type)
}

func TestBuild_ReduceReduceConflict_IsLoggedNotFatal(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> A
		S -> B
		A -> a
		B -> a
	`)

	table := Build(g)

	if assert.Len(table.Conflicts, 1) {
		c := table.Conflicts[0]
		assert.Equal(LRReduce, c.Kept.Type)
		assert.Equal(LRReduce, c.Rejected.Type)
		assert.Equal("$", c.Terminal)
	}
}

func TestBuild_UnreachableNonTerminal_StillBuilds(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> a
		X -> b
	`)

	table := Build(g)

	assert.Empty(table.Conflicts)
	assert.Contains(g.NonTerminals(), "X")
}
