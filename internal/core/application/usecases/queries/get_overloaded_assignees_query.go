// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read straight from the database and return flat responses.
package queries

import (
	"errors"
	"fmt"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/guard"
)

var ErrGetOverloadedAssigneesQueryIsNotConstructed = errors.New(
	"GetOverloadedAssigneesQuery must be created via NewGetOverloadedAssigneesQuery constructor",
)

// AssigneeRole tells which kind of work an assignee carries.
type AssigneeRole string

const (
	RoleDesigner     AssigneeRole = "designer"
	RoleManufacturer AssigneeRole = "manufacturer"
)

// GetOverloadedAssigneesQuery finds designers and manufacturers whose count of
// active jobs is above a limit.
//
// Example:
//
//	query, _ := NewGetOverloadedAssigneesQuery(10, 20)
//	overloaded, err := handler.Handle(ctx, query)
//	for _, a := range overloaded {
//	    fmt.Printf("%s %s has %d active jobs\n", a.Role, a.AssigneeID, a.ActiveCount)
//	}
type GetOverloadedAssigneesQuery struct {
	designerLimit     int
	manufacturerLimit int

	guard guard.ConstructorGuard
}

// NewGetOverloadedAssigneesQuery creates the query. Limits must not be negative.
func NewGetOverloadedAssigneesQuery(designerLimit, manufacturerLimit int) (GetOverloadedAssigneesQuery, error) {
	if designerLimit < 0 || manufacturerLimit < 0 {
		return GetOverloadedAssigneesQuery{}, fmt.Errorf(
			"limits must not be negative: designer %d, manufacturer %d", designerLimit, manufacturerLimit)
	}
	return GetOverloadedAssigneesQuery{
		designerLimit:     designerLimit,
		manufacturerLimit: manufacturerLimit,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverloadedAssigneesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverloadedAssigneesQueryIsNotConstructed)
}

func (q GetOverloadedAssigneesQuery) DesignerLimit() int {
	return q.designerLimit
}

func (q GetOverloadedAssigneesQuery) ManufacturerLimit() int {
	return q.manufacturerLimit
}

// GetOverloadedAssigneesQueryResponse is one overloaded assignee.
type GetOverloadedAssigneesQueryResponse struct {
	Role        AssigneeRole
	AssigneeID  kernel.UUID
	ActiveCount int
}
