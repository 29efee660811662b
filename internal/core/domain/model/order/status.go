package order

import (
	"fmt"

	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	draft ──> pending ──> confirmed ──> processing ──> shipped ──> delivered ──> completed
//	  │          │            │           │    ▲
//	  │          │            │           ▼    │
//	  │          │            │          on_hold
//	  └──────────┴────────────┴───────────┴──────> cancelled
//
// completed and cancelled are terminal. A status may always be "changed" to
// itself, which represents a no-op update.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Draft
	Pending
	Confirmed
	Processing
	Shipped
	Delivered
	Completed
	Cancelled
	OnHold
)

func getStatusStrings() lifecycle.Names[Status] {
	return lifecycle.Names[Status]{
		Draft:      "draft",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Completed:  "completed",
		Cancelled:  "cancelled",
		OnHold:     "on_hold",
	}
}

var transitions = lifecycle.NewTable(map[Status][]Status{
	Draft:      {Pending, Cancelled},
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Processing, Cancelled},
	Processing: {Shipped, Cancelled, OnHold},
	Shipped:    {Delivered},
	Delivered:  {Completed},
	Completed:  {},
	Cancelled:  {},
	OnHold:     {Processing, Cancelled},
})

// Transitions returns the order status table.
func Transitions() lifecycle.Table[Status] {
	return transitions
}

// IsValidTransition reports whether an order may move from one status to another.
func IsValidTransition(from, to Status) bool {
	return transitions.IsValidTransition(from, to)
}

// ParseStatus converts a wire code such as "on_hold" into a Status.
// Unrecognized codes return Unknown together with an error.
func ParseStatus(code string) (Status, error) {
	if s, ok := getStatusStrings().Parse(code); ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", code),
	)
}

// Validate checks if the Status value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code of the status, or "unknown".
func (s Status) String() string {
	return getStatusStrings().Code(s, "unknown")
}

// CanTransitionTo reports whether the table allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	return IsValidTransition(s, next)
}

// IsTerminal reports whether s admits no further transitions.
func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
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
