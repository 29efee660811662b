package rules

import (
	"fmt"

	"governance/internal/pkg/errs"
)

// Severity tells whether a violation blocks a request under the default policy.
type Severity int

const (
	// SeverityError violations are structural or consistency failures.
	SeverityError Severity = iota + 1
	// SeverityWarning violations are advisory.
	SeverityWarning
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityError:   "error",
		SeverityWarning: "warning",
	}
}

func (s Severity) Validate() error {
	if _, ok := getSeverityStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("severity is invalid", fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

func (s Severity) String() string {
	if v, ok := getSeverityStrings()[s]; ok {
		return v
	}
	return "unknown"
}

func (s Severity) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for severity, code := range getSeverityStrings() {
		if code == string(text) {
			*s = severity
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("severity is invalid", fmt.Errorf("%q is not a valid severity", text))
}
