// Package governancerepo implements the read-only lookups that business-rule
// evaluators perform, plus the reference tables only those lookups touch.
package governancerepo

import (
	"time"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID uuid.UUID `gorm:"type:uuid;index"`
	Name  string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type MaterialDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Unit   string `gorm:"type:varchar(16)"`
	Active bool   `gorm:"default:true"`
}

func (MaterialDTO) TableName() string {
	return "materials"
}

// DesignJobDTO is read for designer workload. Design jobs are written by
// another service; this one only counts them.
type DesignJobDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID uuid.UUID `gorm:"type:uuid"`
	AssigneeID  uuid.UUID `gorm:"type:uuid;index"`
	DueDate     *time.Time
	Status      string `gorm:"type:varchar(32);index"`
}

func (DesignJobDTO) TableName() string {
	return "design_jobs"
}
