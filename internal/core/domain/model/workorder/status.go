package workorder

import (
	"fmt"

	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Pending
	Queued
	InProduction
	QualityCheck
	Rework
	Packaging
	Completed
	Shipped
	Cancelled
	OnHold
)

func getStatusStrings() lifecycle.Names[Status] {
	return lifecycle.Names[Status]{
		Pending:      "pending",
		Queued:       "queued",
		InProduction: "in_production",
		QualityCheck: "quality_check",
		Rework:       "rework",
		Packaging:    "packaging",
		Completed:    "completed",
		Shipped:      "shipped",
		Cancelled:    "cancelled",
		OnHold:       "on_hold",
	}
}

var transitions = lifecycle.NewTable(map[Status][]Status{
	Pending:      {Queued, Cancelled},
	Queued:       {InProduction, OnHold, Cancelled},
	InProduction: {QualityCheck, Rework, OnHold, Cancelled},
	QualityCheck: {Packaging, Rework, Completed, Cancelled},
	Rework:       {QualityCheck, Cancelled},
	Packaging:    {Completed, Cancelled},
	Completed:    {Shipped},
	Shipped:      {},
	Cancelled:    {},
	OnHold:       {Queued, InProduction, Cancelled},
})

// Transitions returns the work order status table.
func Transitions() lifecycle.Table[Status] {
	return transitions
}

// IsValidTransition reports whether a work order may move from one status to another.
func IsValidTransition(from, to Status) bool {
	return transitions.IsValidTransition(from, to)
}

// ParseStatus converts a wire code such as "in_production" into a Status.
func ParseStatus(code string) (Status, error) {
	if s, ok := getStatusStrings().Parse(code); ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid work order status", code),
	)
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	return getStatusStrings().Code(s, "unknown")
}

func (s Status) CanTransitionTo(next Status) bool {
	return IsValidTransition(s, next)
}

func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
}

// IsActive reports whether the work order still occupies manufacturer
// capacity. Completed work orders are awaiting shipment and no longer count.
func (s Status) IsActive() bool {
	switch s {
	case Completed, Shipped, Cancelled, Unknown:
		return false
	default:
		return s.Validate() == nil
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
