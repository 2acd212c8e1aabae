// Package lr1 exposes the two operations an LR(1) parser generator and
// driver offers to any caller: Build compiles a grammar into its canonical
// collection and ACTION/GOTO table, and Parse runs a token stream through
// that table to produce a parse tree and trace (spec.md §6.3).
//
// Both operations are pure functions of their text inputs: nothing is
// retained between calls, and a Grammar/Table pair is rebuilt fresh each
// time Parse is invoked, matching spec.md §5's "no persisted state across
// calls" resource model. BuildID and RunID are minted fresh per call so a
// caller sitting on top of any RPC-style transport (spec.md §6.3) can
// correlate a build with later parse calls, or with its own log lines,
// without re-serializing the whole table.
package lr1

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Luis23345432/Compi-Parser/internal/grammar"
	"github.com/Luis23345432/Compi-Parser/internal/parse"
)

// ItemView is the JSON-friendly rendering of an LR(1) item (spec.md §6.4),
// grounded in original_source/api.py's serialize_states item shape.
type ItemView struct {
	LHS       string   `json:"lhs"`
	RHS       []string `json:"rhs"`
	Dot       int      `json:"dot"`
	Lookahead string   `json:"lookahead"`
	Text      string   `json:"text"`
}

// TransitionView is one outgoing edge of a canonical-collection state.
type TransitionView struct {
	Symbol string `json:"symbol"`
	To     int    `json:"to"`
}

// StateView is one state of the canonical collection, grounded in
// original_source/api.py's serialize_states.
type StateView struct {
	ID          int              `json:"id"`
	Items       []ItemView       `json:"items"`
	Transitions []TransitionView `json:"transitions"`
}

// ClosureEntry reports a state's kernel alongside its full closure,
// grounded in original_source/api.py's serialize_closure_table. A kernel
// item is the augmented start item or any item whose dot is not at the
// beginning of its production; Closure holds every item in the state,
// kernel included.
type ClosureEntry struct {
	ID          int              `json:"id"`
	Kernel      []ItemView       `json:"kernel"`
	Closure     []ItemView       `json:"closure"`
	Transitions []TransitionView `json:"transitions"`
}

// ActionView is one ACTION-table cell, rendered for serialization (spec.md
// §6.3: "{shift,to}" / "{reduce,lhs,rhs,text}" / "{accept}" / "{error}"),
// grounded field-for-field in original_source/api.py's serialize_tables.
type ActionView struct {
	Type string   `json:"type"`
	To   int      `json:"to,omitempty"`
	LHS  string   `json:"lhs,omitempty"`
	RHS  []string `json:"rhs,omitempty"`
	Text string   `json:"text,omitempty"`
}

// TableView is the full ACTION/GOTO table, grounded in
// original_source/api.py's serialize_tables.
type TableView struct {
	Terminals    []string                  `json:"terminals"`
	NonTerminals []string                  `json:"nonterminals"`
	Action       map[int]map[string]ActionView `json:"action"`
	Goto         map[int]map[string]int        `json:"goto"`
}

// ConflictView is one entry of the non-destructive conflict log (spec.md
// §4.7 REDESIGN).
type ConflictView struct {
	State    int    `json:"state"`
	Terminal string `json:"terminal"`
	Kept     string `json:"kept"`
	Rejected string `json:"rejected"`
}

// BuildResult is everything Build produces from a grammar's text (spec.md
// §6.3, §6.4).
type BuildResult struct {
	BuildID        uuid.UUID      `json:"build_id"`
	StartSymbol    string         `json:"start_symbol"`
	AugmentedStart string         `json:"augmented_start"`
	Rules          []string       `json:"rules"`
	Productions    []string       `json:"productions"`
	States         []StateView    `json:"states"`
	ClosureTable   []ClosureEntry `json:"closure_table"`
	Table          TableView      `json:"table"`
	Conflicts      []ConflictView `json:"conflicts"`
	NumStates      int            `json:"num_states"`
	Diagnostics    []string       `json:"diagnostics,omitempty"`

	table *parse.Table
}

// TraceActionView is the tagged action of one trace row (spec.md §4.8,
// §6.3: "shift{to, symbol}, reduce{production}, goto{to, on}, accept, or
// error{state, lookahead}"), grounded in original_source/api.py's
// json_trace.
type TraceActionView struct {
	Type       string `json:"type"`
	To         int    `json:"to,omitempty"`
	Symbol     string `json:"symbol,omitempty"`
	Production string `json:"production,omitempty"`
	On         string `json:"on,omitempty"`
	State      int    `json:"state,omitempty"`
	Lookahead  string `json:"lookahead,omitempty"`
}

// TraceRow is one row of a parse's shift-reduce trace (spec.md §4.8,
// §6.3): a snapshot of stateStack, a snapshot of symbolStack, a rendered
// stack display, the remaining input joined by spaces, and a tagged
// action.
type TraceRow struct {
	StackStates    []int           `json:"stack_states"`
	StackSymbols   []string        `json:"stack_symbols"`
	Stack          string          `json:"stack"`
	RemainingInput string          `json:"remaining_input"`
	Action         TraceActionView `json:"action"`
}

// ParseResult is everything Parse produces from a grammar and an input
// token stream (spec.md §6.3).
type ParseResult struct {
	RunID     uuid.UUID      `json:"run_id"`
	Accepted  bool           `json:"accepted"`
	Tree      map[string]any `json:"tree,omitempty"`
	TreeASCII string         `json:"tree_ascii,omitempty"`
	Trace     []TraceRow     `json:"trace"`
	Error     string         `json:"error,omitempty"`
}

// Build loads grammarText (spec.md §4.1), computes FIRST, constructs the
// canonical collection of LR(1) item sets, and builds the ACTION/GOTO
// table (spec.md §4.2-§4.7). It returns an error only on a catastrophic
// grammar-load failure (spec.md §7, kind 2); individual malformed rule
// lines are skipped and reported in Diagnostics instead of failing the
// call, and shift/reduce or reduce/reduce conflicts never fail it either —
// they are recorded in Conflicts (spec.md §4.7 REDESIGN).
func Build(grammarText string) (*BuildResult, error) {
	g, diags, err := loadGrammar(grammarText)
	if err != nil {
		return nil, err
	}

	table := parse.Build(g)
	return toBuildResult(table, diags), nil
}

// Parse loads grammarText, builds its table exactly as Build does, then
// tokenizes inputTokens on whitespace and drives the shift-reduce
// automaton over it (spec.md §4.8). A syntax error does not return a Go
// error: ParseResult.Accepted is false and ParseResult.Error carries the
// description, matching spec.md §7 kind 3's "report, don't panic" policy.
// Only a catastrophic grammar-load failure returns a non-nil error.
func Parse(grammarText, inputTokens string) (*ParseResult, error) {
	g, _, err := loadGrammar(grammarText)
	if err != nil {
		return nil, err
	}

	table := parse.Build(g)
	tokens := strings.Fields(inputTokens)

	node, steps, runErr := parse.Run(table, tokens)

	result := &ParseResult{
		RunID: uuid.New(),
		Trace: make([]TraceRow, len(steps)),
	}
	for i, s := range steps {
		result.Trace[i] = TraceRow{
			StackStates:    s.StackStates,
			StackSymbols:   s.StackSymbols,
			Stack:          s.Stack,
			RemainingInput: s.RemainingInput,
			Action:         toTraceActionView(s.Action),
		}
	}

	if runErr != nil {
		result.Accepted = false
		result.Error = runErr.Error()
		return result, nil
	}

	result.Accepted = true
	result.Tree = node.ToMap()
	result.TreeASCII = node.String()
	return result, nil
}

// toTraceActionView renders a driver TraceAction into its tagged,
// serializable form, populating only the fields its Type calls for
// (spec.md §4.8).
func toTraceActionView(a parse.TraceAction) TraceActionView {
	view := TraceActionView{Type: a.Type.String()}
	switch a.Type {
	case parse.TraceShift:
		view.To = a.To
		view.Symbol = a.Symbol
	case parse.TraceReduce:
		view.Production = a.Production.String()
	case parse.TraceGoto:
		view.To = a.To
		view.On = a.On
	case parse.TraceError:
		view.State = a.State
		view.Lookahead = a.Lookahead
	}
	return view
}

func loadGrammar(grammarText string) (*grammar.Grammar, []string, error) {
	var diags []string
	g := grammar.New()
	if !g.Load(grammarText, func(msg string) { diags = append(diags, msg) }) {
		return nil, diags, &LoadError{Diagnostics: diags}
	}
	return g, diags, nil
}

// LoadError is returned when a grammar's text yields no usable rule at
// all (spec.md §7, kind 2).
type LoadError struct {
	Diagnostics []string
}

func (e *LoadError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "grammar load failed: no rules found"
	}
	return "grammar load failed: " + strings.Join(e.Diagnostics, "; ")
}

func toBuildResult(t *parse.Table, diags []string) *BuildResult {
	g := t.Grammar
	nums := t.StateNums

	result := &BuildResult{
		BuildID:        uuid.New(),
		StartSymbol:    g.StartSymbol(),
		AugmentedStart: g.AugmentedStart(),
		Rules:          g.RawRules(),
		NumStates:      t.NumStates,
		Diagnostics:    diags,
		table:          t,
	}

	for _, p := range t.Productions {
		result.Productions = append(result.Productions, p.String())
	}

	for _, key := range t.DFA.States() {
		id := nums[key]
		items := t.DFA.GetValue(key)

		symbols, tos := t.DFA.Transitions(key)
		transitions := make([]TransitionView, len(symbols))
		for i, sym := range symbols {
			transitions[i] = TransitionView{Symbol: sym, To: nums[tos[i]]}
		}

		var allItems, kernel []ItemView
		for _, ik := range items.Keys() {
			it := items.Get(ik)
			view := ItemView{
				LHS:       it.NonTerminal,
				RHS:       it.RHS(),
				Dot:       it.Dot(),
				Lookahead: it.Lookahead,
				Text:      it.String(),
			}
			allItems = append(allItems, view)
			if it.Dot() > 0 || it.NonTerminal == g.AugmentedStart() {
				kernel = append(kernel, view)
			}
		}

		result.States = append(result.States, StateView{
			ID:          id,
			Items:       allItems,
			Transitions: transitions,
		})
		result.ClosureTable = append(result.ClosureTable, ClosureEntry{
			ID:          id,
			Kernel:      kernel,
			Closure:     allItems,
			Transitions: transitions,
		})
	}

	result.Table = TableView{
		Terminals:    g.Terminals(),
		NonTerminals: g.NonTerminals(),
		Action:       map[int]map[string]ActionView{},
		Goto:         map[int]map[string]int{},
	}
	for state := 0; state < t.NumStates; state++ {
		for _, term := range g.Terminals() {
			act := t.Action(state, term)
			if act.Type == parse.LRError {
				continue
			}
			if result.Table.Action[state] == nil {
				result.Table.Action[state] = map[string]ActionView{}
			}
			view := ActionView{Type: act.Type.String()}
			switch act.Type {
			case parse.LRShift:
				view.To = act.State
			case parse.LRReduce:
				view.LHS = act.Production.LHS
				view.RHS = act.Production.RHS
				view.Text = act.Production.String()
			}
			result.Table.Action[state][term] = view
		}
		for _, nt := range g.NonTerminals() {
			if to, ok := t.Goto(state, nt); ok {
				if result.Table.Goto[state] == nil {
					result.Table.Goto[state] = map[string]int{}
				}
				result.Table.Goto[state][nt] = to
			}
		}
	}

	for _, c := range t.Conflicts {
		result.Conflicts = append(result.Conflicts, ConflictView{
			State:    c.State,
			Terminal: c.Terminal,
			Kept:     c.Kept.String(),
			Rejected: c.Rejected.String(),
		})
	}

	return result
}
