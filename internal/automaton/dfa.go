// Package automaton builds the canonical collection of LR(1) item sets —
// the viable-prefix DFA — and exposes it as a small generic graph type.
// The DFA type itself is value-agnostic (it never looks inside E); the
// LR(1)-specific closure/goto logic lives in canonical.go.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"
)

// DFA is a deterministic finite automaton over arbitrary state values E,
// keyed by a caller-supplied string identity (an LR(1) state's identity is
// the alphabetized text of its item set, per spec.md §4.6). States are
// numbered by first-discovery order, matching the canonical collection's
// worklist discipline (spec.md's Open Question, resolved in SPEC_FULL.md
// §4.2: a state is assigned its ID exactly once, when first created).
type DFA[E any] struct {
	order       []string
	values      map[string]E
	transitions map[string]map[string]string
	start       string
}

// New returns an empty DFA.
func New[E any]() *DFA[E] {
	return &DFA[E]{
		values:      map[string]E{},
		transitions: map[string]map[string]string{},
	}
}

// AddState registers key with value val if key is not already present, and
// returns whether it was newly added. The first state ever added becomes
// the DFA's start state.
func (d *DFA[E]) AddState(key string, val E) bool {
	if _, ok := d.values[key]; ok {
		return false
	}
	d.order = append(d.order, key)
	d.values[key] = val
	if d.start == "" {
		d.start = key
	}
	return true
}

func (d *DFA[E]) HasState(key string) bool {
	_, ok := d.values[key]
	return ok
}

func (d *DFA[E]) GetValue(key string) E {
	return d.values[key]
}

func (d *DFA[E]) SetValue(key string, val E) {
	d.values[key] = val
}

// AddTransition records an edge from -> to on the given symbol. Both
// states must already exist.
func (d *DFA[E]) AddTransition(from, symbol, to string) {
	if d.transitions[from] == nil {
		d.transitions[from] = map[string]string{}
	}
	d.transitions[from][symbol] = to
}

// Next returns the state reached from 'from' on 'symbol', if any.
func (d *DFA[E]) Next(from, symbol string) (string, bool) {
	to, ok := d.transitions[from][symbol]
	return to, ok
}

// Transitions returns the outgoing symbol->state map for a state, sorted
// by symbol, as parallel slices.
func (d *DFA[E]) Transitions(from string) (symbols []string, tos []string) {
	edges := d.transitions[from]
	symbols = make([]string, 0, len(edges))
	for sym := range edges {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	tos = make([]string, len(symbols))
	for i, sym := range symbols {
		tos[i] = edges[sym]
	}
	return symbols, tos
}

// States returns every state key in first-discovery order — the order that
// assigns state 0, 1, 2, ... per spec.md §4.6.
func (d *DFA[E]) States() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// StateNumbers returns a key->int map assigning each state its
// first-discovery index.
func (d *DFA[E]) StateNumbers() map[string]int {
	out := make(map[string]int, len(d.order))
	for i, k := range d.order {
		out[k] = i
	}
	return out
}

// NumStates returns the number of states in the DFA.
func (d *DFA[E]) NumStates() int {
	return len(d.order)
}

// Start returns the key of the start state.
func (d *DFA[E]) Start() string {
	return d.start
}

// String renders the DFA as a transition table, in the same rosed-backed
// style the teacher uses for every other domain table
// (internal/ictiobus/automaton/dfa.go's DFA.String(), internal/ictiobus/
// parse/clr1.go's table String()).
func (d *DFA[E]) String() string {
	nums := d.StateNumbers()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("DFA with %d states:\n", len(d.order)))
	for _, key := range d.order {
		symbols, tos := d.Transitions(key)
		data := [][]string{{"symbol", "goto"}}
		for i, sym := range symbols {
			data = append(data, []string{sym, fmt.Sprintf("%d", nums[tos[i]])})
		}
		header := fmt.Sprintf("state %d", nums[key])
		table := rosed.
			Edit("").
			InsertTableOpts(0, data, 10, rosed.Options{
				TableHeaders:             true,
				NoTrailingLineSeparators: true,
			}).
			String()
		sb.WriteString(header + "\n" + table + "\n")
	}
	return sb.String()
}
