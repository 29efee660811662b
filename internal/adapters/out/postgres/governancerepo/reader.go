package governancerepo

import (
	"context"
	"errors"

	"governance/internal/adapters/out/postgres/orderrepo"
	"governance/internal/adapters/out/postgres/workorderrepo"
	"governance/internal/core/domain/model/catalog"
	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGovernanceReader answers evaluator lookups straight from the database,
// outside of any unit of work.
type GormGovernanceReader struct {
	db *gorm.DB
}

func NewGormGovernanceReader(db *gorm.DB) *GormGovernanceReader {
	return &GormGovernanceReader{db: db}
}

func (r *GormGovernanceReader) CustomerByID(ctx context.Context, id kernel.UUID) (catalog.Customer, error) {
	var dto CustomerDTO
	if err := r.first(ctx, &dto, "customer", id); err != nil {
		return catalog.Customer{}, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return catalog.Customer{}, err
	}
	return catalog.Customer{ID: id, OrgID: orgID, Name: dto.Name}, nil
}

func (r *GormGovernanceReader) MaterialByID(ctx context.Context, id kernel.UUID) (catalog.Material, error) {
	var dto MaterialDTO
	if err := r.first(ctx, &dto, "material", id); err != nil {
		return catalog.Material{}, err
	}
	return catalog.Material{ID: id, Name: dto.Name, Unit: dto.Unit, Active: dto.Active}, nil
}

func (r *GormGovernanceReader) OrderItemsByOrder(ctx context.Context, orderID kernel.UUID) ([]order.ItemSnapshot, error) {
	var dtos []orderrepo.OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]order.ItemSnapshot, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		status, statusErr := order.ParseItemStatus(dto.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		result = append(result, order.ItemSnapshot{
			ID:       id,
			OrderID:  orderID,
			Status:   status,
			Quantity: dto.Quantity,
		})
	}
	return result, nil
}

func (r *GormGovernanceReader) DesignJobsByAssignee(
	ctx context.Context,
	assigneeID kernel.UUID,
) ([]designjob.Snapshot, error) {
	var dtos []DesignJobDTO
	if err := r.db.WithContext(ctx).Where("assignee_id = ?", assigneeID.Bytes()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]designjob.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		status, err := designjob.ParseStatus(dto.Status)
		if err != nil {
			return nil, err
		}
		result = append(result, designjob.Snapshot{ID: id, AssigneeID: assigneeID, Status: status})
	}
	return result, nil
}

func (r *GormGovernanceReader) WorkOrdersByManufacturer(
	ctx context.Context,
	manufacturerID kernel.UUID,
) ([]workorder.Snapshot, error) {
	var dtos []workorderrepo.WorkOrderDTO
	err := r.db.WithContext(ctx).
		Select("id", "status").
		Where("manufacturer_id = ?", manufacturerID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]workorder.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		status, statusErr := workorder.ParseStatus(dto.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		result = append(result, workorder.Snapshot{ID: id, ManufacturerID: manufacturerID, Status: status})
	}
	return result, nil
}

func (r *GormGovernanceReader) OrderStatus(ctx context.Context, id kernel.UUID) (order.Status, error) {
	code, err := r.status(ctx, &orderrepo.OrderDTO{}, "order", id)
	if err != nil {
		return order.Unknown, err
	}
	return order.ParseStatus(code)
}

func (r *GormGovernanceReader) WorkOrderStatus(ctx context.Context, id kernel.UUID) (workorder.Status, error) {
	code, err := r.status(ctx, &workorderrepo.WorkOrderDTO{}, "work order", id)
	if err != nil {
		return workorder.Unknown, err
	}
	return workorder.ParseStatus(code)
}

func (r *GormGovernanceReader) status(ctx context.Context, model any, name string, id kernel.UUID) (string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id.Bytes()).
		Limit(1).
		Pluck("status", &codes).Error
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", errs.NewObjectNotFoundError(name, id.String())
	}
	return codes[0], nil
}

func (r *GormGovernanceReader) first(ctx context.Context, dst any, name string, id kernel.UUID) error {
	err := r.db.WithContext(ctx).First(dst, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(name, id.String())
	}
	return err
}
