package grammar

import (
	"strings"

	"github.com/Luis23345432/Compi-Parser/internal/util"
)

// Rule is every alternative declared for a single non-terminal (spec.md §3:
// "rules: ordered sequence of raw rule strings" is the textual form; Rule
// is its structured form after normalization). Each element of Productions
// is one alternative's right-hand side; an empty slice denotes epsilon.
type Rule struct {
	NonTerminal string
	Productions [][]string
}

// Grammar holds the ordered rule list, the start non-terminal, and the
// terminal/non-terminal vocabularies (spec.md §3). It is created empty,
// populated once via Load, and read-only thereafter (spec.md §3
// Lifecycle).
type Grammar struct {
	initial      string
	ruleOrder    []string
	rulesByName  map[string]*Rule
	nonTerminals util.StringSet
	terminals    util.StringSet
	rawRules     []string
}

// New returns an empty Grammar, ready for Load.
func New() *Grammar {
	return &Grammar{
		rulesByName:  map[string]*Rule{},
		nonTerminals: util.NewStringSet(),
		terminals:    util.NewStringSet(EndMarker),
	}
}

// Load populates g from grammarText, per the grammar text format of
// spec.md §4.1/§6.1. diag, if non-nil, receives one message per malformed
// rule line (no "->", or an empty LHS); such lines are skipped but do not
// fail the load. Load returns false only on catastrophic failure — here,
// a text blob that yields no usable rule at all — in which case g is left
// with no partially-built state exposed to the caller (spec.md §7, kind 2).
func (g *Grammar) Load(grammarText string, diag func(string)) bool {
	if diag == nil {
		diag = func(string) {}
	}

	g.initial = ""
	g.ruleOrder = nil
	g.rulesByName = map[string]*Rule{}
	g.nonTerminals = util.NewStringSet()
	g.terminals = util.NewStringSet(EndMarker)
	g.rawRules = nil

	var pendingTerminals []string
	anyRuleParsed := false

	for _, raw := range strings.Split(grammarText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		arrow := strings.Index(line, "->")
		if arrow == -1 {
			diag("malformed rule line (no '->' found): " + line)
			continue
		}
		lhs := strings.TrimSpace(line[:arrow])
		if lhs == "" {
			diag("malformed rule line (empty left-hand side): " + line)
			continue
		}

		g.rawRules = append(g.rawRules, line)

		if g.initial == "" {
			g.initial = lhs
		}
		if !g.nonTerminals.Has(lhs) {
			g.nonTerminals.Add(lhs)
			g.ruleOrder = append(g.ruleOrder, lhs)
			g.rulesByName[lhs] = &Rule{NonTerminal: lhs}
		}

		rhsText := strings.TrimSpace(line[arrow+2:])
		for _, alt := range strings.Split(rhsText, "|") {
			alt = strings.TrimSpace(alt)
			if isEpsilonAlternative(alt) {
				g.rulesByName[lhs].Productions = append(g.rulesByName[lhs].Productions, nil)
				continue
			}

			var rhs []string
			for _, tok := range splitFields(alt) {
				sym := normalizeSymbol(tok)
				rhs = append(rhs, sym)
				pendingTerminals = append(pendingTerminals, sym)
			}
			g.rulesByName[lhs].Productions = append(g.rulesByName[lhs].Productions, rhs)
		}

		anyRuleParsed = true
	}

	if !anyRuleParsed {
		return false
	}

	for _, sym := range pendingTerminals {
		if !g.nonTerminals.Has(sym) {
			g.terminals.Add(sym)
		}
	}

	return true
}

// StartSymbol is the non-terminal of the first declared rule.
func (g *Grammar) StartSymbol() string {
	return g.initial
}

// AugmentedStart is the start symbol with as many prime suffixes appended
// as needed to avoid colliding with a declared non-terminal (spec.md §9
// "Augmentation uniqueness").
func (g *Grammar) AugmentedStart() string {
	candidate := g.initial + "'"
	for g.nonTerminals.Has(candidate) {
		candidate += "'"
	}
	return candidate
}

// NonTerminals returns the grammar's non-terminal vocabulary, sorted.
func (g *Grammar) NonTerminals() []string {
	return g.nonTerminals.Sorted()
}

// Terminals returns the grammar's terminal vocabulary, sorted; it always
// includes EndMarker.
func (g *Grammar) Terminals() []string {
	return g.terminals.Sorted()
}

// IsNonTerminal reports whether sym is a declared non-terminal, or the
// augmented start symbol (which behaves as a non-terminal for
// closure-expansion purposes per spec.md §9, but is excluded from GOTO).
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonTerminals.Has(sym) || sym == g.AugmentedStart()
}

// IsTerminal reports whether sym is a declared terminal (including "$").
// A symbol is a terminal iff it never appears as a rule's left-hand side
// (spec.md §3); this mirrors that by simple negation of IsNonTerminal for
// any symbol actually present in the grammar's RHS vocabulary.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Has(sym)
}

// Rule returns the declared Rule for nonTerminal, or nil if there is none.
func (g *Grammar) Rule(nonTerminal string) *Rule {
	return g.rulesByName[nonTerminal]
}

// RuleOrder returns non-terminal names in declared order.
func (g *Grammar) RuleOrder() []string {
	out := make([]string, len(g.ruleOrder))
	copy(out, g.ruleOrder)
	return out
}

// RawRules returns the grammar's rule lines exactly as declared, in
// declaration order — spec.md §3's "rules" field, used verbatim in
// BuildResult.Rules.
func (g *Grammar) RawRules() []string {
	out := make([]string, len(g.rawRules))
	copy(out, g.rawRules)
	return out
}

// AllSymbols returns nonTerminals ∪ terminals ∪ {augmented start}, sorted —
// the deterministic enumeration spec.md §4.6/§5 requires when discovering
// transitions out of a state.
func (g *Grammar) AllSymbols() []string {
	all := g.nonTerminals.Copy()
	all.AddAll(g.terminals)
	all.Add(g.AugmentedStart())
	return all.Sorted()
}
