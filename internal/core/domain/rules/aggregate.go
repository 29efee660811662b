package rules

import "strings"

// Aggregate is a partition of violations by severity. Input order is
// preserved within each partition.
type Aggregate struct {
	Errors   []Violation
	Warnings []Violation
}

// AggregateViolations partitions vs by severity. A violation with an
// unrecognized severity is counted as an error.
func AggregateViolations(vs []Violation) Aggregate {
	a := Aggregate{
		Errors:   make([]Violation, 0, len(vs)),
		Warnings: make([]Violation, 0),
	}
	for _, v := range vs {
		if v.IsWarning() {
			a.Warnings = append(a.Warnings, v)
			continue
		}
		a.Errors = append(a.Errors, v)
	}
	return a
}

// JoinMessages renders violation messages for human consumers.
func JoinMessages(vs []Violation) string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

// HasCode reports whether any violation in vs carries code.
func HasCode(vs []Violation, code Code) bool {
	for _, v := range vs {
		if v.Code == code {
			return true
		}
	}
	return false
}
