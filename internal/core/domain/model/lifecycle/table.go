package lifecycle

import (
	"cmp"
	"slices"
)

// Table maps each status to the statuses reachable from it in exactly one step.
//
// A status declared with no successors is terminal. A status that does not
// appear in the table at all has no successors either. Self-transitions are
// always permitted and never need to be declared.
//
// Table has no mutators; the zero value is an empty table.
type Table[S cmp.Ordered] struct {
	successors map[S]map[S]struct{}
}

// NewTable builds a Table from a successor listing:
//
//	var transitions = lifecycle.NewTable(map[Status][]Status{
//	    Draft:     {Pending, Cancelled},
//	    Cancelled: {},
//	})
func NewTable[S cmp.Ordered](edges map[S][]S) Table[S] {
	successors := make(map[S]map[S]struct{}, len(edges))
	for from, targets := range edges {
		set := make(map[S]struct{}, len(targets))
		for _, to := range targets {
			set[to] = struct{}{}
		}
		successors[from] = set
	}
	return Table[S]{successors: successors}
}

// IsValidTransition reports whether to is reachable from from in one step.
// It is total: unknown statuses simply yield false unless from == to.
func (t Table[S]) IsValidTransition(from, to S) bool {
	if from == to {
		return true
	}
	_, ok := t.successors[from][to]
	return ok
}

// Successors returns the declared successors of from in ascending order.
func (t Table[S]) Successors(from S) []S {
	set := t.successors[from]
	out := make([]S, 0, len(set))
	for to := range set {
		out = append(out, to)
	}
	slices.Sort(out)
	return out
}

// IsTerminal reports whether s is declared with no outgoing transitions.
// Undeclared statuses are not terminal; they are unknown.
func (t Table[S]) IsTerminal(s S) bool {
	set, declared := t.successors[s]
	return declared && len(set) == 0
}

// States returns every declared status in ascending order.
func (t Table[S]) States() []S {
	out := make([]S, 0, len(t.successors))
	for s := range t.successors {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
