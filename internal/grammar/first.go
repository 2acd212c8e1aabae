package grammar

import "github.com/Luis23345432/Compi-Parser/internal/util"

// FirstSets holds the computed FIRST set for every non-terminal, plus the
// trivial FIRST(a) = {a} for every terminal. Each non-terminal's set may
// contain EpsilonMarker, meaning that non-terminal can derive the empty
// string (spec.md §4.2).
type FirstSets struct {
	g     *Grammar
	table map[string]util.StringSet
}

// ComputeFirst runs the fixed-point iteration of spec.md §4.2 over every
// production of g and returns the resulting FIRST table. It is grounded in
// original_source's first.py: Compute() repeatedly walks every production's
// right-hand side until no set grows, propagating nullability left to
// right and stopping the walk at the first non-nullable symbol.
func ComputeFirst(g *Grammar) *FirstSets {
	fs := &FirstSets{g: g, table: map[string]util.StringSet{}}
	for _, nt := range g.NonTerminals() {
		fs.table[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.ruleOrder {
			rule := g.rulesByName[nt]
			for _, rhs := range rule.Productions {
				if fs.addProductionFirst(nt, rhs) {
					changed = true
				}
			}
		}
	}

	return fs
}

// addProductionFirst folds one production's contribution into FIRST(nt),
// returning true if the set grew.
func (fs *FirstSets) addProductionFirst(nt string, rhs []string) bool {
	before := fs.table[nt].Len()

	if len(rhs) == 0 {
		fs.table[nt].Add(EpsilonMarker)
		return fs.table[nt].Len() != before
	}

	allNullableSoFar := true
	for _, sym := range rhs {
		if !fs.g.IsNonTerminal(sym) {
			// Unknown symbols are treated as terminals (spec.md §4.2).
			fs.table[nt].Add(sym)
			allNullableSoFar = false
			break
		}

		symFirst := fs.table[sym]
		for _, t := range symFirst.Sorted() {
			if t != EpsilonMarker {
				fs.table[nt].Add(t)
			}
		}
		if !symFirst.Has(EpsilonMarker) {
			allNullableSoFar = false
			break
		}
	}

	if allNullableSoFar {
		fs.table[nt].Add(EpsilonMarker)
	}

	return fs.table[nt].Len() != before
}

// FIRST returns FIRST(sym): for a terminal (or the end marker), the
// singleton {sym}; for a non-terminal, its computed set (which may contain
// EpsilonMarker).
func (fs *FirstSets) FIRST(sym string) util.StringSet {
	if fs.g.IsNonTerminal(sym) {
		return fs.table[sym].Copy()
	}
	return util.NewStringSet(sym)
}

// OfSequence computes FIRST(beta), falling back to {lookahead} if beta is
// nullable in its entirety — the FIRST(beta a) construction used throughout
// closure (spec.md §4.2, §4.5). lookahead is never itself expanded; it is
// assumed to already be a terminal.
func (fs *FirstSets) OfSequence(beta []string, lookahead string) util.StringSet {
	out := util.NewStringSet()

	allNullable := true
	for _, sym := range beta {
		if !fs.g.IsNonTerminal(sym) {
			out.Add(sym)
			allNullable = false
			break
		}

		symFirst := fs.table[sym]
		for _, t := range symFirst.Sorted() {
			if t != EpsilonMarker {
				out.Add(t)
			}
		}
		if !symFirst.Has(EpsilonMarker) {
			allNullable = false
			break
		}
	}

	if allNullable {
		out.Add(lookahead)
	}

	return out
}
