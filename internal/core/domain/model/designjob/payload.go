package designjob

import (
	"time"

	"governance/internal/core/domain/model/kernel"
)

// Payload is a candidate design job.
type Payload struct {
	ID          *kernel.UUID `json:"id,omitempty"`
	OrderID     *kernel.UUID `json:"orderId,omitempty"`
	OrderItemID *kernel.UUID `json:"orderItemId,omitempty"`
	AssigneeID  *kernel.UUID `json:"assigneeId,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
}
