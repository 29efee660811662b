package purchaseorder

import (
	"time"

	"governance/internal/core/domain/model/kernel"
)

// Payload is a candidate purchase order.
type Payload struct {
	ID                   *kernel.UUID  `json:"id,omitempty"`
	SupplierID           *kernel.UUID  `json:"supplierId,omitempty"`
	OrderDate            *time.Time    `json:"orderDate,omitempty"`
	ExpectedDeliveryDate *time.Time    `json:"expectedDeliveryDate,omitempty"`
	Items                []ItemPayload `json:"items,omitempty"`
	TotalAmount          *float64      `json:"totalAmount,omitempty"`
}

// ItemPayload is one material line of a purchase order.
type ItemPayload struct {
	MaterialID kernel.UUID `json:"materialId"`
	Quantity   float64     `json:"quantity"`
	UnitCost   float64     `json:"unitCost"`
}
