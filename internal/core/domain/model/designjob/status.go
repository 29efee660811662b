// Package designjob describes artwork design jobs assigned to designers for a
// single order item.
package designjob

import (
	"fmt"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/pkg/errs"
)

// Status represents the lifecycle state of a design job.
type Status int

const (
	Unknown Status = iota
	Pending
	Assigned
	InProgress
	Review
	RevisionRequested
	Approved
	Completed
	Cancelled
)

func getStatusStrings() lifecycle.Names[Status] {
	return lifecycle.Names[Status]{
		Pending:           "pending",
		Assigned:          "assigned",
		InProgress:        "in_progress",
		Review:            "review",
		RevisionRequested: "revision_requested",
		Approved:          "approved",
		Completed:         "completed",
		Cancelled:         "cancelled",
	}
}

var transitions = lifecycle.NewTable(map[Status][]Status{
	Pending:           {Assigned, Cancelled},
	Assigned:          {InProgress, Cancelled},
	InProgress:        {Review, Cancelled},
	Review:            {Approved, RevisionRequested, Cancelled},
	RevisionRequested: {InProgress, Cancelled},
	Approved:          {Completed},
	Completed:         {},
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
		fmt.Errorf("%q is not a valid design job status", code),
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

// IsActive reports whether the job counts against the designer's workload.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !transitions.IsTerminal(s)
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

// Snapshot is the read model of a persisted design job.
type Snapshot struct {
	ID         kernel.UUID
	AssigneeID kernel.UUID
	Status     Status
}
