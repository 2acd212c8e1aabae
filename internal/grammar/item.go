package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is an LR(0) item: a production with a dot position, represented
// as the symbols already consumed (Left) and the symbols still to come
// (Right), so the dot position is simply len(Left). This split
// representation (rather than a bare rhs+int) mirrors the teacher's
// grammar.LR0Item.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// RHS returns the item's full right-hand side, Left followed by Right.
func (it LR0Item) RHS() []string {
	out := make([]string, 0, len(it.Left)+len(it.Right))
	out = append(out, it.Left...)
	out = append(out, it.Right...)
	return out
}

// Dot returns the item's dot position, 0 <= Dot() <= len(RHS()).
func (it LR0Item) Dot() int {
	return len(it.Left)
}

// AtEnd reports whether the dot is at the end of the production (a reduce
// item).
func (it LR0Item) AtEnd() bool {
	return len(it.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot and true, or ""
// and false if the dot is at the end.
func (it LR0Item) NextSymbol() (string, bool) {
	if len(it.Right) == 0 {
		return "", false
	}
	return it.Right[0], true
}

// Advance returns the item with the dot moved one symbol to the right. It
// panics if the dot is already at the end; callers must check AtEnd first.
func (it LR0Item) Advance() LR0Item {
	next := LR0Item{
		NonTerminal: it.NonTerminal,
		Left:        make([]string, len(it.Left)+1),
		Right:       make([]string, len(it.Right)-1),
	}
	copy(next.Left, it.Left)
	next.Left[len(it.Left)] = it.Right[0]
	copy(next.Right, it.Right[1:])
	return next
}

func (it LR0Item) itemText() string {
	parts := make([]string, 0, len(it.Left)+len(it.Right)+1)
	parts = append(parts, it.Left...)
	parts = append(parts, "·")
	parts = append(parts, it.Right...)
	return fmt.Sprintf("%s -> %s", it.NonTerminal, strings.Join(parts, " "))
}

func (it LR0Item) String() string {
	return it.itemText()
}

func (it LR0Item) Equal(o LR0Item) bool {
	if it.NonTerminal != o.NonTerminal || len(it.Left) != len(o.Left) || len(it.Right) != len(o.Right) {
		return false
	}
	for i := range it.Left {
		if it.Left[i] != o.Left[i] {
			return false
		}
	}
	for i := range it.Right {
		if it.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

// LR1Item is an LR(1) item: an LR0Item plus a lookahead terminal (spec.md
// §3). Items are compared structurally and their String() form doubles as
// their set-identity hash key (spec.md §5, §9: "a natural systems-language
// shape ... interning of symbols" — here the canonical text form serves
// that role without a separate interning table).
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (it LR1Item) String() string {
	return fmt.Sprintf("[%s, %s]", it.itemText(), it.Lookahead)
}

func (it LR1Item) Equal(o LR1Item) bool {
	return it.LR0Item.Equal(o.LR0Item) && it.Lookahead == o.Lookahead
}

func (it LR1Item) Copy() LR1Item {
	cp := LR1Item{
		LR0Item: LR0Item{
			NonTerminal: it.NonTerminal,
			Left:        append([]string{}, it.Left...),
			Right:       append([]string{}, it.Right...),
		},
		Lookahead: it.Lookahead,
	}
	return cp
}

// Advance returns the LR1Item with the dot moved one symbol to the right,
// lookahead unchanged.
func (it LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Advance(), Lookahead: it.Lookahead}
}
