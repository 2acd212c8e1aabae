package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrammar_Load_BasicShape(t *testing.T) {
	testCases := []struct {
		name             string
		text             string
		expectStart      string
		expectNonTerms   []string
		expectTerms      []string
		expectProdsForNT map[string]int
	}{
		{
			name: "classic two-rule grammar",
			text: `
				S -> C C
				C -> c C | d
			`,
			expectStart:      "S",
			expectNonTerms:   []string{"C", "S"},
			expectTerms:      []string{"$", "c", "d"},
			expectProdsForNT: map[string]int{"S": 1, "C": 2},
		},
		{
			name: "epsilon alternative",
			text: `
				S -> A b
				A -> a A | ''
			`,
			expectStart:      "S",
			expectNonTerms:   []string{"A", "S"},
			expectTerms:      []string{"$", "a", "b"},
			expectProdsForNT: map[string]int{"S": 1, "A": 2},
		},
		{
			name: "quoted literal terminals are unquoted at load time",
			text: `
				E -> E '+' T | T
				T -> id
			`,
			expectStart:      "E",
			expectNonTerms:   []string{"E", "T"},
			expectTerms:      []string{"$", "+", "id"},
			expectProdsForNT: map[string]int{"E": 2, "T": 1},
		},
		{
			name: "comments and blank lines are ignored",
			text: "" +
				"# a comment\n" +
				"\n" +
				"S -> a\n" +
				"   # another comment\n",
			expectStart:      "S",
			expectNonTerms:   []string{"S"},
			expectTerms:      []string{"$", "a"},
			expectProdsForNT: map[string]int{"S": 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g := New()

			ok := g.Load(tc.text, nil)
			if !assert.True(ok) {
				return
			}

			assert.Equal(tc.expectStart, g.StartSymbol())
			assert.Equal(tc.expectNonTerms, g.NonTerminals())
			assert.Equal(tc.expectTerms, g.Terminals())

			for nt, count := range tc.expectProdsForNT {
				rule := g.Rule(nt)
				if assert.NotNil(rule, "rule for %s", nt) {
					assert.Len(rule.Productions, count, "production count for %s", nt)
				}
			}
		})
	}
}

func TestGrammar_Load_MalformedLinesAreSkippedNotFatal(t *testing.T) {
	assert := assert.New(t)
	var diags []string

	g := New()
	ok := g.Load(`
		S -> a
		this line has no arrow
		-> missing left hand side
		A -> b
	`, func(msg string) { diags = append(diags, msg) })

	assert.True(ok)
	assert.Len(diags, 2)
	assert.ElementsMatch([]string{"S", "A"}, g.NonTerminals())
}

func TestGrammar_Load_EmptyTextFails(t *testing.T) {
	assert := assert.New(t)
	g := New()
	ok := g.Load("   \n   # nothing but comments\n", nil)
	assert.False(ok)
}

func TestGrammar_AugmentedStart_AvoidsCollision(t *testing.T) {
	assert := assert.New(t)
	g := New()
	ok := g.Load(`
		S -> a
		S' -> b
	`, nil)
	assert.True(ok)
	assert.Equal("S''", g.AugmentedStart())
}

func TestGrammar_IsTerminal_IsNonTerminal(t *testing.T) {
	assert := assert.New(t)
	g := New()
	ok := g.Load(`
		S -> C C
		C -> c C | d
	`, nil)
	assert.True(ok)

	assert.True(g.IsNonTerminal("S"))
	assert.True(g.IsNonTerminal("C"))
	assert.False(g.IsNonTerminal("c"))

	assert.True(g.IsTerminal("c"))
	assert.True(g.IsTerminal("d"))
	assert.True(g.IsTerminal(EndMarker))
	assert.False(g.IsTerminal("S"))
}
