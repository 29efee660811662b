package postgres

import (
	"governance/internal/adapters/out/postgres/governancerepo"
	"governance/internal/adapters/out/postgres/orderrepo"
	"governance/internal/adapters/out/postgres/workorderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&governancerepo.CustomerDTO{},
		&governancerepo.MaterialDTO{},
		&governancerepo.DesignJobDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&workorderrepo.WorkOrderDTO{},
	)
}
