// Package workorderrepo persists work order aggregates.
package workorderrepo

import (
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure of a work order.
type WorkOrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID    uuid.UUID `gorm:"type:uuid"`
	ManufacturerID uuid.UUID `gorm:"type:uuid;index"`
	Quantity       int
	PlannedStart   *time.Time
	PlannedEnd     *time.Time
	Status         string `gorm:"type:varchar(32);index"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		OrderItemID:    aggregate.OrderItemID().Bytes(),
		ManufacturerID: aggregate.ManufacturerID().Bytes(),
		Quantity:       aggregate.Quantity(),
		PlannedStart:   aggregate.PlannedStart(),
		PlannedEnd:     aggregate.PlannedEnd(),
		Status:         aggregate.Status().String(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.OrderItemID, dto.ManufacturerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	status, err := workorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(ids[0], ids[1], ids[2], ids[3], dto.Quantity, dto.PlannedStart, dto.PlannedEnd, status)
}
