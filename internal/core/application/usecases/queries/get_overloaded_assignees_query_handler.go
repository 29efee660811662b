package queries

import (
	"context"

	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverloadedAssigneesQueryHandler counts active design jobs and work orders
// per assignee. Results are ordered by role, then by descending count.
type GetOverloadedAssigneesQueryHandler struct {
	db *gorm.DB
}

func NewGetOverloadedAssigneesQueryHandler(db *gorm.DB) GetOverloadedAssigneesQueryHandler {
	return GetOverloadedAssigneesQueryHandler{db: db}
}

func (h GetOverloadedAssigneesQueryHandler) Handle(
	ctx context.Context,
	query GetOverloadedAssigneesQuery,
) ([]GetOverloadedAssigneesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role, assignee_id, active_count FROM (
			SELECT 'designer' AS role, assignee_id, COUNT(*) AS active_count
			FROM design_jobs
			WHERE status IN ?
			GROUP BY assignee_id
			HAVING COUNT(*) > ?
			UNION ALL
			SELECT 'manufacturer' AS role, manufacturer_id AS assignee_id, COUNT(*) AS active_count
			FROM work_orders
			WHERE status IN ?
			GROUP BY manufacturer_id
			HAVING COUNT(*) > ?
		) AS overloaded
		ORDER BY role, active_count DESC, assignee_id
	`,
		activeDesignJobCodes(), query.DesignerLimit(),
		activeWorkOrderCodes(), query.ManufacturerLimit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetOverloadedAssigneesQueryResponse, 0)
	for rows.Next() {
		var (
			role  string
			id    uuid.UUID
			count int
		)
		if err = rows.Scan(&role, &id, &count); err != nil {
			return nil, err
		}

		assigneeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		result = append(result, GetOverloadedAssigneesQueryResponse{
			Role:        AssigneeRole(role),
			AssigneeID:  assigneeID,
			ActiveCount: count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func activeDesignJobCodes() []string {
	var codes []string
	for _, s := range designjob.Transitions().States() {
		if s.IsActive() {
			codes = append(codes, s.String())
		}
	}
	return codes
}

func activeWorkOrderCodes() []string {
	var codes []string
	for _, s := range workorder.Transitions().States() {
		if s.IsActive() {
			codes = append(codes, s.String())
		}
	}
	return codes
}
