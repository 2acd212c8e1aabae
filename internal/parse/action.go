package parse

import (
	"fmt"

	"github.com/Luis23345432/Compi-Parser/internal/grammar"
)

// LRActionType distinguishes the four things a parser can do on a given
// (state, terminal) cell (spec.md §3, §4.7).
type LRActionType int

const (
	LRError LRActionType = iota
	LRShift
	LRReduce
	LRAccept
)

func (t LRActionType) String() string {
	switch t {
	case LRShift:
		return "shift"
	case LRReduce:
		return "reduce"
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

// LRAction is one ACTION-table cell (spec.md §3): a Shift carries the
// target state, a Reduce carries the production to reduce by, Accept and
// Error carry nothing further. Grounded in
// internal/ictiobus/parse/lraction.go's LRAction/LRActionType, trimmed to
// this module's non-destructive conflict policy (no panic helpers).
type LRAction struct {
	Type       LRActionType
	State      int
	Production grammar.Production
}

func (a LRAction) String() string {
	switch a.Type {
	case LRShift:
		return fmt.Sprintf("shift %d", a.State)
	case LRReduce:
		return fmt.Sprintf("reduce %s", a.Production.String())
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

func (a LRAction) Equal(o LRAction) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case LRShift:
		return a.State == o.State
	case LRReduce:
		return a.Production.Equal(o.Production)
	default:
		return true
	}
}

// Conflict records one rejected ACTION-table assignment (spec.md §4.7,
// §7's non-destructive conflict policy REDESIGN FLAG): a second action
// wanted the same (state, terminal) cell as one already installed. The
// first-installed action is always the one kept; Rejected is never
// applied.
type Conflict struct {
	State    int
	Terminal string
	Kept     LRAction
	Rejected LRAction
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at state %d on %q: kept %s, rejected %s",
		c.State, c.Terminal, c.Kept.String(), c.Rejected.String())
}
