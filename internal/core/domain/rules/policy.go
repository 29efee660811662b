package rules

// Policy decides which severities block a request.
type Policy struct {
	BlockOnErrors   bool `yaml:"blockOnErrors" json:"blockOnErrors"`
	BlockOnWarnings bool `yaml:"blockOnWarnings" json:"blockOnWarnings"`
}

// DefaultPolicy blocks on errors and lets warnings through.
func DefaultPolicy() Policy {
	return Policy{BlockOnErrors: true, BlockOnWarnings: false}
}

// EnforcementResult is the outcome of one request evaluation. A new result is
// built for every request.
type EnforcementResult struct {
	Errors   []Violation `json:"errors"`
	Warnings []Violation `json:"warnings"`
	Blocked  bool        `json:"blocked"`

	reasons []Violation
}

// Decide applies p to a.
func Decide(a Aggregate, p Policy) EnforcementResult {
	blockedByErrors := len(a.Errors) > 0 && p.BlockOnErrors
	blockedByWarnings := len(a.Warnings) > 0 && p.BlockOnWarnings

	r := EnforcementResult{
		Errors:   nonNil(a.Errors),
		Warnings: nonNil(a.Warnings),
		Blocked:  blockedByErrors || blockedByWarnings,
	}
	switch {
	case blockedByErrors:
		r.reasons = r.Errors
	case blockedByWarnings:
		r.reasons = r.Warnings
	}
	return r
}

// Enforce aggregates vs and applies p.
func Enforce(vs []Violation, p Policy) EnforcementResult {
	return Decide(AggregateViolations(vs), p)
}

// Reasons returns the violations that caused the block: the errors when errors
// block, otherwise the warnings. It is empty for results that passed.
func (r EnforcementResult) Reasons() []Violation {
	return r.reasons
}

// Violations returns errors followed by warnings.
func (r EnforcementResult) Violations() []Violation {
	out := make([]Violation, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

func nonNil(vs []Violation) []Violation {
	if vs == nil {
		return []Violation{}
	}
	return vs
}
