// Package inventory describes stock records for raw materials. Inventory has
// no status lifecycle; only its quantities are governed.
package inventory

import "governance/internal/core/domain/model/kernel"

// Payload is a candidate inventory record or adjustment.
type Payload struct {
	ID               *kernel.UUID `json:"id,omitempty"`
	MaterialID       *kernel.UUID `json:"materialId,omitempty"`
	QuantityOnHand   *float64     `json:"quantityOnHand,omitempty"`
	QuantityReserved *float64     `json:"quantityReserved,omitempty"`
	ReorderLevel     *float64     `json:"reorderLevel,omitempty"`
}
