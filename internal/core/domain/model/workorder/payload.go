package workorder

import (
	"time"

	"governance/internal/core/domain/model/kernel"
)

// Payload is a candidate work order submitted for creation or update.
type Payload struct {
	ID               *kernel.UUID `json:"id,omitempty"`
	OrderID          *kernel.UUID `json:"orderId,omitempty"`
	OrderItemID      *kernel.UUID `json:"orderItemId,omitempty"`
	ManufacturerID   *kernel.UUID `json:"manufacturerId,omitempty"`
	Quantity         *int         `json:"quantity,omitempty"`
	PlannedStartDate *time.Time   `json:"plannedStartDate,omitempty"`
	PlannedEndDate   *time.Time   `json:"plannedEndDate,omitempty"`
}

// Snapshot is the read model of a persisted work order used for workload checks.
type Snapshot struct {
	ID             kernel.UUID
	ManufacturerID kernel.UUID
	Status         Status
}
