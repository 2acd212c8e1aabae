package parse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/Luis23345432/Compi-Parser/internal/automaton"
	"github.com/Luis23345432/Compi-Parser/internal/grammar"
)

// Table is the canonical-LR(1) ACTION/GOTO table (spec.md §4.7), plus the
// canonical collection it was built from and the non-destructive conflict
// log required by this module's REDESIGN of the teacher's panic-on-conflict
// behavior (see SPEC_FULL.md §4.1). Grounded in
// internal/ictiobus/parse/clr1.go's canonicalLR1Table, with
// constructCanonicalLR1ParseTable's error-returning conflict handling
// replaced by an append-only log.
type Table struct {
	Grammar     *grammar.Grammar
	Productions []grammar.Production
	DFA         *automaton.DFA[automaton.ItemSet]
	StateNums   map[string]int
	NumStates   int

	action    map[int]map[string]LRAction
	gotoTable map[int]map[string]int
	Conflicts []Conflict
}

// Build constructs the canonical-LR(1) ACTION/GOTO table for g (spec.md
// §4.6-§4.7). It never fails: a grammar with shift/reduce or reduce/reduce
// conflicts still yields a usable (if inherently ambiguous) table, with
// every rejected assignment recorded in Table.Conflicts rather than
// aborting construction.
func Build(g *grammar.Grammar) *Table {
	fs := grammar.ComputeFirst(g)
	dfa := automaton.BuildCanonicalCollection(g, fs)
	prods := grammar.BuildProductions(g)
	nums := dfa.StateNumbers()

	t := &Table{
		Grammar:     g,
		Productions: prods,
		DFA:         dfa,
		StateNums:   nums,
		NumStates:   dfa.NumStates(),
		action:      map[int]map[string]LRAction{},
		gotoTable:   map[int]map[string]int{},
	}

	for _, key := range dfa.States() {
		state := nums[key]
		items := dfa.GetValue(key)

		for _, itemKey := range items.Keys() {
			item := items.Get(itemKey)

			if item.AtEnd() {
				if item.NonTerminal == g.AugmentedStart() && item.Lookahead == grammar.EndMarker {
					t.installAction(state, grammar.EndMarker, LRAction{Type: LRAccept})
					continue
				}
				prod := t.findProduction(item.NonTerminal, item.RHS())
				t.installAction(state, item.Lookahead, LRAction{Type: LRReduce, Production: prod})
				continue
			}

			next, _ := item.NextSymbol()
			if g.IsTerminal(next) {
				if to, ok := dfa.Next(key, next); ok {
					t.installAction(state, next, LRAction{Type: LRShift, State: nums[to]})
				}
			}
		}

		for _, nt := range g.NonTerminals() {
			if to, ok := dfa.Next(key, nt); ok {
				if t.gotoTable[state] == nil {
					t.gotoTable[state] = map[string]int{}
				}
				t.gotoTable[state][nt] = nums[to]
			}
		}
	}

	return t
}

func (t *Table) findProduction(lhs string, rhs []string) grammar.Production {
	for _, p := range t.Productions {
		if p.LHS == lhs && sameSymbols(p.RHS, rhs) {
			return p
		}
	}
	// A reduce item always corresponds to a declared production; reaching
	// here would mean the canonical collection produced an item whose
	// production was never registered, which BuildCanonicalCollection
	// cannot do.
	panic(fmt.Sprintf("no production found for %s -> %v", lhs, rhs))
}

func sameSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// installAction assigns action to (state, terminal) if the cell is empty;
// if an action is already installed, it is kept and the rejected one is
// appended to Conflicts (spec.md §4.7's non-destructive conflict policy).
func (t *Table) installAction(state int, terminal string, action LRAction) {
	if t.action[state] == nil {
		t.action[state] = map[string]LRAction{}
	}
	existing, ok := t.action[state][terminal]
	if !ok {
		t.action[state][terminal] = action
		return
	}
	if existing.Equal(action) {
		return
	}
	t.Conflicts = append(t.Conflicts, Conflict{
		State:    state,
		Terminal: terminal,
		Kept:     existing,
		Rejected: action,
	})
}

// Action returns the ACTION-table entry for (state, terminal), or the
// zero-value LRError action if none is installed.
func (t *Table) Action(state int, terminal string) LRAction {
	row, ok := t.action[state]
	if !ok {
		return LRAction{Type: LRError}
	}
	act, ok := row[terminal]
	if !ok {
		return LRAction{Type: LRError}
	}
	return act
}

// Goto returns the GOTO-table entry for (state, nonTerminal), and whether
// one exists.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	row, ok := t.gotoTable[state]
	if !ok {
		return 0, false
	}
	to, ok := row[nonTerminal]
	return to, ok
}

// String renders the ACTION/GOTO table using the same rosed-backed table
// layout the teacher uses for its own parse tables
// (internal/ictiobus/parse/clr1.go's String()).
func (t *Table) String() string {
	terms := t.Grammar.Terminals()
	nts := t.Grammar.NonTerminals()

	headers := []string{"state"}
	for _, term := range terms {
		headers = append(headers, "a:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nts {
		headers = append(headers, "g:"+nt)
	}

	data := [][]string{headers}
	for state := 0; state < t.NumStates; state++ {
		row := []string{fmt.Sprintf("%d", state)}
		for _, term := range terms {
			act := t.Action(state, term)
			cell := ""
			switch act.Type {
			case LRAccept:
				cell = "acc"
			case LRShift:
				cell = fmt.Sprintf("s%d", act.State)
			case LRReduce:
				cell = fmt.Sprintf("r%s", act.Production.String())
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nts {
			cell := ""
			if to, ok := t.Goto(state, nt); ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	var sb strings.Builder
	sb.WriteString(rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String())

	if len(t.Conflicts) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d conflict(s):\n", len(t.Conflicts)))
		for _, c := range t.Conflicts {
			sb.WriteString(c.String() + "\n")
		}
	}

	return sb.String()
}
