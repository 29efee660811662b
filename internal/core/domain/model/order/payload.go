package order

import (
	"time"

	"governance/internal/core/domain/model/kernel"
)

// Payload is a candidate order as submitted by a client. Every field is
// optional: rule checks only run when the fields they depend on are present,
// so partial updates are evaluated with the same rule set as full creates.
type Payload struct {
	ID              *kernel.UUID  `json:"id,omitempty"`
	OrgID           *kernel.UUID  `json:"orgId,omitempty"`
	CustomerID      *kernel.UUID  `json:"customerId,omitempty"`
	Items           []ItemPayload `json:"items,omitempty"`
	TotalAmount     *float64      `json:"totalAmount,omitempty"`
	RevenueEstimate *float64      `json:"revenueEstimate,omitempty"`
	DueDate         *time.Time    `json:"dueDate,omitempty"`
}

// ItemPayload is one line of a candidate order.
type ItemPayload struct {
	ID            *kernel.UUID `json:"id,omitempty"`
	ProductName   string       `json:"productName,omitempty"`
	Quantity      int          `json:"quantity"`
	PriceSnapshot float64      `json:"priceSnapshot"`
}

// ItemSnapshot is the read model of a persisted order item, as seen by rule
// evaluators through the data-access port.
type ItemSnapshot struct {
	ID       kernel.UUID
	OrderID  kernel.UUID
	Status   ItemStatus
	Quantity int
}
