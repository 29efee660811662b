// Package catalog holds the read models of reference data that rule
// evaluators look up: customers and materials.
package catalog

import "governance/internal/core/domain/model/kernel"

// Customer belongs to exactly one organization.
type Customer struct {
	ID    kernel.UUID
	OrgID kernel.UUID
	Name  string
}

// BelongsTo reports whether the customer is owned by orgID.
func (c Customer) BelongsTo(orgID kernel.UUID) bool {
	return c.OrgID.IsEqual(orgID)
}

// Material is a purchasable raw material.
type Material struct {
	ID     kernel.UUID
	Name   string
	Unit   string
	Active bool
}
