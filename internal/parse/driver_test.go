package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ClassicGrammar_AcceptsAndRejects(t *testing.T) {
	g := buildGrammar(t, `
		S -> C C
		C -> c C | d
	`)
	table := Build(g)

	testCases := []struct {
		name    string
		tokens  []string
		accept  bool
	}{
		{name: "two minimal Cs", tokens: []string{"d", "d"}, accept: true},
		{name: "nested then minimal", tokens: []string{"c", "c", "d", "d"}, accept: true},
		{name: "single d is incomplete", tokens: []string{"d"}, accept: false},
		{name: "all shifts, no terminator", tokens: []string{"c", "c"}, accept: false},
		{name: "trailing garbage after accept", tokens: []string{"d", "d", "d"}, accept: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			tree, steps, err := Run(table, tc.tokens)

			if tc.accept {
				assert.NoError(err)
				if assert.NotNil(tree) {
					assert.Equal("S", tree.Label)
					assert.False(tree.Terminal)
				}
			} else {
				assert.Error(err)
				assert.Nil(tree)
			}
			assert.NotEmpty(steps)
		})
	}
}

func TestRun_TraceHasTwoRowsPerReduce(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> d
	`)
	table := Build(g)

	_, steps, err := Run(table, []string{"d"})
	assert.NoError(err)

	// shift d, reduce S -> d (two rows), accept: 1 + 2 + 1 = 4 rows.
	assert.Len(steps, 4)
	assert.Equal(TraceReduce, steps[1].Action.Type)
	assert.Equal(TraceGoto, steps[2].Action.Type)
	assert.Equal("S", steps[2].Action.On)
}

func TestRun_TraceCarriesStackSnapshotsAndRemainingInput(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> C C
		C -> c C | d
	`)
	table := Build(g)

	_, steps, err := Run(table, []string{"c", "d", "d"})
	assert.NoError(err)

	first := steps[0]
	assert.Equal([]int{0}, first.StackStates)
	assert.Empty(first.StackSymbols)
	assert.Equal("c d d $", first.RemainingInput)
	assert.Equal(TraceShift, first.Action.Type)
	assert.Equal("c", first.Action.Symbol)

	last := steps[len(steps)-1]
	assert.Equal(TraceAccept, last.Action.Type)
	assert.Equal("$", last.RemainingInput)
}

func TestRun_OperatorPrecedenceGrammar(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		E -> E '+' T | T
		T -> T '*' F | F
		F -> '(' E ')' | id
	`)
	table := Build(g)

	tree, _, err := Run(table, []string{"id", "+", "id", "*", "id"})
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.Equal("E", tree.Label)
	}
}

func TestRun_NullableGrammar(t *testing.T) {
	assert := assert.New(t)
	g := buildGrammar(t, `
		S -> A b
		A -> a A | ''
	`)
	table := Build(g)

	testCases := []struct {
		name   string
		tokens []string
	}{
		{name: "A reduces to epsilon", tokens: []string{"b"}},
		{name: "one a before b", tokens: []string{"a", "b"}},
		{name: "several a's before b", tokens: []string{"a", "a", "a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			tree, _, err := Run(table, tc.tokens)
			assert.NoError(err)
			assert.NotNil(tree)
		})
	}
}
