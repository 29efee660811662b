package http

import (
	"net/http"

	"governance/internal/adapters/in/http/apidocs"
	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/inventory"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/purchaseorder"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/core/domain/rules"

	"github.com/labstack/echo/v4"
)

// Route is one governed endpoint. Name identifies the route in policy files,
// metrics and audit records.
type Route struct {
	Name     string
	Method   string
	Path     string
	Schema   string
	Evaluate Evaluation
	Handler  echo.HandlerFunc
}

// Routes returns the static registry of governed endpoints served by s.
func Routes(s *Server) []Route {
	return []Route{
		{
			Name:     "orders.create",
			Method:   http.MethodPost,
			Path:     "/api/v1/orders",
			Schema:   apidocs.SchemaOrder,
			Evaluate: payloadEvaluation[order.Payload](rules.NewOrderEvaluator()),
			Handler:  s.CreateOrder,
		},
		{
			Name:     "orders.status",
			Method:   http.MethodPatch,
			Path:     "/api/v1/orders/:id/status",
			Schema:   apidocs.SchemaStatusRequest,
			Evaluate: statusEvaluation(rules.NewOrderTransitionEvaluator()),
			Handler:  s.ChangeOrderStatus,
		},
		{
			Name:     "work-orders.create",
			Method:   http.MethodPost,
			Path:     "/api/v1/work-orders",
			Schema:   apidocs.SchemaWorkOrder,
			Evaluate: payloadEvaluation[workorder.Payload](rules.NewWorkOrderEvaluator()),
			Handler:  s.CreateWorkOrder,
		},
		{
			Name:     "work-orders.status",
			Method:   http.MethodPatch,
			Path:     "/api/v1/work-orders/:id/status",
			Schema:   apidocs.SchemaStatusRequest,
			Evaluate: statusEvaluation(rules.NewWorkOrderTransitionEvaluator()),
			Handler:  s.ChangeWorkOrderStatus,
		},
		{
			Name:     "orders.validate",
			Method:   http.MethodPost,
			Path:     "/api/v1/orders/validate",
			Schema:   apidocs.SchemaOrder,
			Evaluate: payloadEvaluation[order.Payload](rules.NewOrderEvaluator()),
			Handler:  s.Validate,
		},
		{
			Name:     "design-jobs.validate",
			Method:   http.MethodPost,
			Path:     "/api/v1/design-jobs/validate",
			Schema:   apidocs.SchemaDesignJob,
			Evaluate: payloadEvaluation[designjob.Payload](rules.NewDesignJobEvaluator()),
			Handler:  s.Validate,
		},
		{
			Name:     "work-orders.validate",
			Method:   http.MethodPost,
			Path:     "/api/v1/work-orders/validate",
			Schema:   apidocs.SchemaWorkOrder,
			Evaluate: payloadEvaluation[workorder.Payload](rules.NewWorkOrderEvaluator()),
			Handler:  s.Validate,
		},
		{
			Name:     "purchase-orders.validate",
			Method:   http.MethodPost,
			Path:     "/api/v1/purchase-orders/validate",
			Schema:   apidocs.SchemaPurchaseOrder,
			Evaluate: payloadEvaluation[purchaseorder.Payload](rules.NewPurchaseOrderEvaluator()),
			Handler:  s.Validate,
		},
		{
			Name:     "inventory.validate",
			Method:   http.MethodPost,
			Path:     "/api/v1/inventory/validate",
			Schema:   apidocs.SchemaInventory,
			Evaluate: payloadEvaluation[inventory.Payload](rules.NewInventoryEvaluator()),
			Handler:  s.Validate,
		},
	}
}

// RouteNames lists the names of routes in registry order.
func RouteNames(routes []Route) []string {
	names := make([]string, 0, len(routes))
	for _, r := range routes {
		names = append(names, r.Name)
	}
	return names
}

// RegisterRoutes mounts every route behind its governor guard.
func RegisterRoutes(e *echo.Echo, g *Governor, routes []Route) {
	for _, r := range routes {
		e.Add(r.Method, r.Path, r.Handler, g.Guard(r))
	}
}
