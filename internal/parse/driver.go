package parse

import (
	"fmt"
	"strings"

	"github.com/Luis23345432/Compi-Parser/internal/grammar"
	"github.com/Luis23345432/Compi-Parser/internal/tree"
	"github.com/Luis23345432/Compi-Parser/internal/util"
)

// TraceActionType tags the kind of action a TraceStep records (spec.md
// §4.8: "a tagged action (shift{to, symbol}, reduce{production},
// goto{to, on}, accept, or error{state, lookahead})").
type TraceActionType int

const (
	TraceShift TraceActionType = iota
	TraceReduce
	TraceGoto
	TraceAccept
	TraceError
)

func (t TraceActionType) String() string {
	switch t {
	case TraceShift:
		return "shift"
	case TraceReduce:
		return "reduce"
	case TraceGoto:
		return "goto"
	case TraceAccept:
		return "accept"
	default:
		return "error"
	}
}

// TraceAction is the tagged action of one trace row (spec.md §4.8). Only
// the fields relevant to Type are populated: shift carries To/Symbol,
// reduce carries Production, goto carries To/On, error carries
// State/Lookahead, accept carries nothing further.
type TraceAction struct {
	Type       TraceActionType
	To         int
	Symbol     string
	Production grammar.Production
	On         string
	State      int
	Lookahead  string
}

func (a TraceAction) String() string {
	switch a.Type {
	case TraceShift:
		return fmt.Sprintf("shift %s -> state %d", a.Symbol, a.To)
	case TraceReduce:
		return fmt.Sprintf("reduce by %s", a.Production.String())
	case TraceGoto:
		return fmt.Sprintf("goto state %d on %s", a.To, a.On)
	case TraceAccept:
		return "accept"
	default:
		return fmt.Sprintf("error in state %d on %q", a.State, a.Lookahead)
	}
}

// TraceStep is one recorded row of a parse's shift-reduce trace (spec.md
// §4.8, §6.3): a snapshot of stateStack, a snapshot of symbolStack, a
// rendered stack display, the remaining input joined by spaces, and a
// tagged action. Grounded in original_source/lr_parser.py's trace rows
// (pila_str() for the display, entrada_rest = ' '.join(tokens[ip:]) for
// the remaining input) and internal/ictiobus/parse/lr.go's
// notifyTrace/notifyAction hooks.
type TraceStep struct {
	StackStates    []int
	StackSymbols   []string
	Stack          string
	RemainingInput string
	Action         TraceAction
}

// Run drives the shift-reduce automaton described by t over tokens
// (spec.md §4.8). EndMarker is appended automatically; callers pass only
// the input's real tokens. On success it returns the completed parse tree
// and the full trace. On a syntax error it returns a nil tree, the trace
// accumulated up to the failure, and a non-nil error describing the
// offending token and state (spec.md §7, kind 3).
//
// Every reduce emits two trace rows, matching original_source's
// lr_parser.py: one at the moment the reduce action is selected (stack
// still holding the symbols being reduced), and a second immediately after
// the GOTO transition is applied (stack already collapsed to the new
// non-terminal). A shift or accept emits exactly one row.
func Run(t *Table, tokens []string) (*tree.Node, []TraceStep, error) {
	input := make([]string, 0, len(tokens)+1)
	input = append(input, tokens...)
	input = append(input, grammar.EndMarker)

	states := &util.Stack[int]{}
	states.Push(0)
	syms := &util.Stack[string]{}
	nodes := &util.Stack[*tree.Node]{}

	var steps []TraceStep
	pos := 0

	record := func(action TraceAction) {
		steps = append(steps, TraceStep{
			StackStates:    states.Snapshot(),
			StackSymbols:   syms.Snapshot(),
			Stack:          pilaStr(states, syms),
			RemainingInput: strings.Join(input[pos:], " "),
			Action:         action,
		})
	}

	for {
		state := states.Peek()
		lookahead := input[pos]
		act := t.Action(state, lookahead)

		switch act.Type {
		case LRShift:
			record(TraceAction{Type: TraceShift, To: act.State, Symbol: lookahead})
			states.Push(act.State)
			syms.Push(lookahead)
			nodes.Push(tree.NewTerminal(lookahead))
			pos++

		case LRReduce:
			record(TraceAction{Type: TraceReduce, Production: act.Production})

			n := len(act.Production.RHS)
			children := make([]*tree.Node, n)
			for i := n - 1; i >= 0; i-- {
				states.Pop()
				syms.Pop()
				children[i] = nodes.Pop()
			}

			node := tree.NewNonTerminal(act.Production.LHS, children)
			nodes.Push(node)
			syms.Push(act.Production.LHS)

			top := states.Peek()
			gotoState, ok := t.Goto(top, act.Production.LHS)
			if !ok {
				return nil, steps, fmt.Errorf("no GOTO entry for state %d on %s", top, act.Production.LHS)
			}
			states.Push(gotoState)

			record(TraceAction{Type: TraceGoto, To: gotoState, On: act.Production.LHS})

		case LRAccept:
			record(TraceAction{Type: TraceAccept})
			return nodes.Peek(), steps, nil

		default:
			record(TraceAction{Type: TraceError, State: state, Lookahead: lookahead})
			return nil, steps, fmt.Errorf("syntax error: unexpected token %q in state %d", lookahead, state)
		}
	}
}

// pilaStr renders the parallel state/symbol stacks as "(s0) X1 (s1) X2
// (s2) ...", exactly the format original_source's lr_parser.py builds in
// pila_str().
func pilaStr(states *util.Stack[int], syms *util.Stack[string]) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("(%d)", states.Of[0]))
	for i, sym := range syms.Of {
		sb.WriteString(" " + sym + fmt.Sprintf(" (%d)", states.Of[i+1]))
	}
	return sb.String()
}
