// Package purchaseorder describes supplier purchase orders for raw materials.
package purchaseorder

import (
	"fmt"

	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// A rejected purchase order returns to draft for correction; received and
// cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Draft
	Submitted
	Approved
	Rejected
	Ordered
	PartiallyReceived
	Received
	Cancelled
)

func getStatusStrings() lifecycle.Names[Status] {
	return lifecycle.Names[Status]{
		Draft:             "draft",
		Submitted:         "submitted",
		Approved:          "approved",
		Rejected:          "rejected",
		Ordered:           "ordered",
		PartiallyReceived: "partially_received",
		Received:          "received",
		Cancelled:         "cancelled",
	}
}

var transitions = lifecycle.NewTable(map[Status][]Status{
	Draft:             {Submitted, Cancelled},
	Submitted:         {Approved, Rejected, Cancelled},
	Approved:          {Ordered, Cancelled},
	Rejected:          {Draft},
	Ordered:           {PartiallyReceived, Received, Cancelled},
	PartiallyReceived: {Received},
	Received:          {},
	Cancelled:         {},
})

func Transitions() lifecycle.Table[Status] {
	return transitions
}

func IsValidTransition(from, to Status) bool {
	return transitions.IsValidTransition(from, to)
}

func ParseStatus(code string) (Status, error) {
	if s, ok := getStatusStrings().Parse(code); ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid purchase order status", code),
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

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
