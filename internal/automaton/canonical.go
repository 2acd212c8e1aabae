package automaton

import (
	"github.com/Luis23345432/Compi-Parser/internal/grammar"
	"github.com/Luis23345432/Compi-Parser/internal/util"
)

// ItemSet is the value type stored at each canonical-collection state: the
// full (closed) set of LR(1) items reachable in that state, keyed by each
// item's canonical text form.
type ItemSet = util.SVSet[grammar.LR1Item]

// closure computes the closure of a seed item set per spec.md §4.4: while
// some item [A -> α · B β, a] has B a non-terminal, add [B -> · γ, b] for
// every production B -> γ and every b in FIRST(β a), for as long as the set
// keeps growing. Grounded in
// internal/ictiobus/automaton/dfa.go's NewLR1ViablePrefixDFA closure step
// and original_source/lr1.py's LR1Builder.closure().
func closure(seed ItemSet, g *grammar.Grammar, fs *grammar.FirstSets) ItemSet {
	result := seed.Copy()

	changed := true
	for changed {
		changed = false
		for _, key := range result.Keys() {
			item := result.Get(key)
			next, ok := item.NextSymbol()
			if !ok || !g.IsNonTerminal(next) {
				continue
			}

			rule := g.Rule(next)
			if rule == nil {
				continue
			}

			beta := append([]string{}, item.Right[1:]...)
			lookaheads := fs.OfSequence(beta, item.Lookahead)

			for _, rhs := range rule.Productions {
				for _, la := range lookaheads.Sorted() {
					if la == grammar.EpsilonMarker {
						continue
					}
					newItem := grammar.LR1Item{
						LR0Item: grammar.LR0Item{
							NonTerminal: next,
							Left:        nil,
							Right:       append([]string{}, rhs...),
						},
						Lookahead: la,
					}
					k := newItem.String()
					if !result.Has(k) {
						result.Set(k, newItem)
						changed = true
					}
				}
			}
		}
	}

	return result
}

// gotoSet computes GOTO(items, X) per spec.md §4.5: advance the dot past X
// in every item of 'items' that has X immediately after its dot, then take
// the closure of the result.
func gotoSet(items ItemSet, sym string, g *grammar.Grammar, fs *grammar.FirstSets) ItemSet {
	moved := util.NewSVSet[grammar.LR1Item]()
	for _, key := range items.Keys() {
		item := items.Get(key)
		next, ok := item.NextSymbol()
		if !ok || next != sym {
			continue
		}
		advanced := item.Advance()
		moved.Set(advanced.String(), advanced)
	}
	if moved.Empty() {
		return moved
	}
	return closure(moved, g, fs)
}

// BuildCanonicalCollection builds the canonical collection of LR(1) item
// sets for g — the viable-prefix DFA of spec.md §4.6 — using a LIFO
// worklist that enqueues each new state exactly once, at the moment it is
// first discovered (the Open Question resolution recorded in
// SPEC_FULL.md §4.2). Grounded in
// internal/ictiobus/automaton/dfa.go's NewLR1ViablePrefixDFA and
// original_source/lr1.py's build_canonical_collection.
func BuildCanonicalCollection(g *grammar.Grammar, fs *grammar.FirstSets) *DFA[ItemSet] {
	dfa := New[ItemSet]()

	startItem := grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			NonTerminal: g.AugmentedStart(),
			Left:        nil,
			Right:       []string{g.StartSymbol()},
		},
		Lookahead: grammar.EndMarker,
	}
	startSeed := util.NewSVSet[grammar.LR1Item]()
	startSeed.Set(startItem.String(), startItem)
	startSet := closure(startSeed, g, fs)
	startKey := startSet.StringOrdered()
	dfa.AddState(startKey, startSet)

	worklist := []string{startKey}
	for len(worklist) > 0 {
		n := len(worklist) - 1
		key := worklist[n]
		worklist = worklist[:n]

		items := dfa.GetValue(key)
		for _, sym := range g.AllSymbols() {
			if sym == g.AugmentedStart() {
				continue
			}
			next := gotoSet(items, sym, g, fs)
			if next.Empty() {
				continue
			}

			nextKey := next.StringOrdered()
			if dfa.AddState(nextKey, next) {
				worklist = append(worklist, nextKey)
			}
			dfa.AddTransition(key, sym, nextKey)
		}
	}

	return dfa
}
