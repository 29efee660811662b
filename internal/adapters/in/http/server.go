package http

import (
	"context"
	"errors"
	"net/http"

	"governance/internal/core/application/usecases/commands"
	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/core/domain/rules"
	"governance/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	changeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	createWorkOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) error
	}
	changeWorkOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeWorkOrderStatusCommand) error
	}
)

// Server holds the handlers that run once the governor has let a request through.
type Server struct {
	createOrderHandler           createOrderHandler
	changeOrderStatusHandler     changeOrderStatusHandler
	createWorkOrderHandler       createWorkOrderHandler
	changeWorkOrderStatusHandler changeWorkOrderStatusHandler
}

func NewServer(
	createOrder createOrderHandler,
	changeOrderStatus changeOrderStatusHandler,
	createWorkOrder createWorkOrderHandler,
	changeWorkOrderStatus changeWorkOrderStatusHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrder,
		changeOrderStatusHandler:     changeOrderStatus,
		createWorkOrderHandler:       createWorkOrder,
		changeWorkOrderStatusHandler: changeWorkOrderStatus,
	}
}

type createdData struct {
	ID kernel.UUID `json:"id"`
}

type statusData struct {
	ID     kernel.UUID `json:"id"`
	Status string      `json:"status"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var payload order.Payload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, commands.OrderItemInput{
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PriceSnapshot: item.PriceSnapshot,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		idOrNew(payload.ID), deref(payload.OrgID), deref(payload.CustomerID),
		items, deref(payload.TotalAmount), payload.RevenueEstimate, payload.DueDate,
	)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeCommandError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, createdData{ID: cmd.OrderID()})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, code, err := bindStatusChange(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, err.Error())
	}

	status, err := order.ParseStatus(code)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeCommandError(c, err)
	}
	return writeSuccess(c, http.StatusOK, statusData{ID: id, Status: status.String()})
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(c echo.Context) error {
	var payload workorder.Payload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, "Invalid request body")
	}

	cmd, err := commands.NewCreateWorkOrderCommand(
		idOrNew(payload.ID), deref(payload.OrderID), deref(payload.OrderItemID), deref(payload.ManufacturerID),
		deref(payload.Quantity), payload.PlannedStartDate, payload.PlannedEndDate,
	)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, "Invalid work order data: "+err.Error())
	}

	if err = s.createWorkOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeCommandError(c, err)
	}
	return writeSuccess(c, http.StatusCreated, createdData{ID: cmd.WorkOrderID()})
}

// ChangeWorkOrderStatus handles PATCH /api/v1/work-orders/:id/status.
func (s *Server) ChangeWorkOrderStatus(c echo.Context) error {
	id, code, err := bindStatusChange(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, err.Error())
	}

	status, err := workorder.ParseStatus(code)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	}
	cmd, err := commands.NewChangeWorkOrderStatusCommand(id, status)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	}

	if err = s.changeWorkOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeCommandError(c, err)
	}
	return writeSuccess(c, http.StatusOK, statusData{ID: id, Status: status.String()})
}

// Validate answers the dry-run routes with the enforcement result the
// governor attached.
func (s *Server) Validate(c echo.Context) error {
	result, ok := c.Get(ResultKey).(rules.EnforcementResult)
	if !ok {
		return writeError(c, http.StatusInternalServerError, CodeBusinessRuleValidationError,
			"Unable to validate business rules")
	}
	return writeSuccess(c, http.StatusOK, result)
}

func bindStatusChange(c echo.Context) (kernel.UUID, string, error) {
	id, err := bindEntityID(c)
	if err != nil {
		return kernel.UUID{}, "", err
	}

	var req rules.StatusRequest
	if err = (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return kernel.UUID{}, "", errors.New("invalid request body")
	}
	return id, req.StatusCode, nil
}

func writeCommandError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return writeError(c, http.StatusConflict, CodeInvalidStatusTransition, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return writeError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	default:
		c.Logger().Error(err)
		return writeError(c, http.StatusInternalServerError, CodeInternalError, "Failed to process request")
	}
}

func idOrNew(id *kernel.UUID) kernel.UUID {
	if id != nil {
		return *id
	}
	return kernel.NewUUID()
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
