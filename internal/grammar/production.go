package grammar

import "strings"

// Production is an immutable (lhs, rhs, index) triple (spec.md §3). RHS is a
// finite ordered sequence of symbols; a nil/empty RHS denotes epsilon.
// Index is the production's position in the grammar's full production list,
// where index 0 is always the augmented start production S' -> S.
type Production struct {
	LHS   string
	RHS   []string
	Index int
}

// Equal compares LHS and RHS only; Index is positional metadata, not part
// of a production's identity as a rewrite rule.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.LHS + " -> ''"
	}
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// BuildProductions emits the production list described in spec.md §4.3: the
// augmented start S' -> S first, then one production per alternative of
// every rule, in declared order.
func BuildProductions(g *Grammar) []Production {
	prods := make([]Production, 0, 1+len(g.ruleOrder))

	prods = append(prods, Production{
		LHS:   g.AugmentedStart(),
		RHS:   []string{g.StartSymbol()},
		Index: 0,
	})

	for _, nt := range g.ruleOrder {
		rule := g.rulesByName[nt]
		for _, alt := range rule.Productions {
			rhs := make([]string, len(alt))
			copy(rhs, alt)
			prods = append(prods, Production{
				LHS:   nt,
				RHS:   rhs,
				Index: len(prods),
			})
		}
	}

	return prods
}
