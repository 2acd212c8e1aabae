package automaton

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

func TestBuildCanonicalCollection_ClassicGrammar(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> C C
		C -> c C | d
	`)
	fs := grammar.ComputeFirst(g)

	dfa := BuildCanonicalCollection(g, fs)

	// The textbook canonical collection for this grammar (Aho/Sethi/Ullman's
	// running LR(1) example) has exactly 10 states.
	assert.Equal(10, dfa.NumStates())

	start := dfa.Start()
	items := dfa.GetValue(start)
	assert.True(items.Has("[S' -> · S, $]"))
}

func TestBuildCanonicalCollection_NullableGrammar(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> A b
		A -> a A | ''
	`)
	fs := grammar.ComputeFirst(g)

	dfa := BuildCanonicalCollection(g, fs)

	start := dfa.Start()
	items := dfa.GetValue(start)

	// The closure of the start item must include the epsilon alternative of
	// A directly reduced, since A is nullable and reachable with dot at 0.
	found := false
	for _, key := range items.Keys() {
		it := items.Get(key)
		if it.NonTerminal == "A" && it.AtEnd() && len(it.RHS()) == 0 {
			found = true
		}
	}
	assert.True(found, "expected a reduce-by-epsilon item for A in the start state")
}

func TestBuildCanonicalCollection_EveryStateReachableFromStart(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		E -> E '+' T | T
		T -> T '*' F | F
		F -> '(' E ')' | id
	`)
	fs := grammar.ComputeFirst(g)
	dfa := BuildCanonicalCollection(g, fs)

	seen := map[string]bool{dfa.Start(): true}
	worklist := []string{dfa.Start()}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		symbols, tos := dfa.Transitions(cur)
		for i := range symbols {
			if !seen[tos[i]] {
				seen[tos[i]] = true
				worklist = append(worklist, tos[i])
			}
		}
	}

	assert.Len(seen, dfa.NumStates())
}
