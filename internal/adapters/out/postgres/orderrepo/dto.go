// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire code so that raw queries and reports can read it.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID           uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount     float64   `gorm:"type:numeric(14,2)"`
	RevenueEstimate *float64  `gorm:"type:numeric(14,2)"`
	DueDate         *time.Time
	Status          string         `gorm:"type:varchar(32);index"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductName   string
	Quantity      int
	PriceSnapshot float64 `gorm:"type:numeric(14,2)"`
	Status        string  `gorm:"type:varchar(32)"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrgID:           aggregate.OrgID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		TotalAmount:     aggregate.TotalAmount(),
		RevenueEstimate: aggregate.RevenueEstimate(),
		DueDate:         aggregate.DueDate(),
		Status:          aggregate.Status().String(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       dto.ID,
			ProductName:   item.ProductName(),
			Quantity:      item.Quantity(),
			PriceSnapshot: item.PriceSnapshot(),
			Status:        item.Status().String(),
		})
	}

	return dto
}

// toDomain converts a database DTO with preloaded items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, orgID, customerID, items, dto.TotalAmount, dto.RevenueEstimate, dto.DueDate, status)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	status, err := order.ParseItemStatus(dto.Status)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(id, dto.ProductName, dto.Quantity, dto.PriceSnapshot, status)
}
