package http

import (
	"net/http"
	"time"

	"governance/internal/core/domain/rules"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the error envelope.
const (
	CodeBusinessRuleViolation       = "BUSINESS_RULE_VIOLATION"
	CodeInvalidStatusTransition     = "INVALID_STATUS_TRANSITION"
	CodeBusinessRuleValidationError = "BUSINESS_RULE_VALIDATION_ERROR"
	CodeInvalidRequestBody          = "INVALID_REQUEST_BODY"
	CodeValidationError             = "VALIDATION_ERROR"
	CodeNotFound                    = "NOT_FOUND"
	CodeInternalError               = "INTERNAL_ERROR"
)

// ErrorBody is the payload of a failed response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ErrorResponse is the envelope of every non-2xx response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse is the envelope of every 2xx response.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func writeError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func writeSuccess(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// writeBlocked answers a blocked request. Only the violations that caused the
// block are reported.
func writeBlocked(c echo.Context, result rules.EnforcementResult, at time.Time) error {
	reasons := result.Reasons()

	code := CodeBusinessRuleViolation
	if rules.HasCode(reasons, rules.CodeInvalidStatusTransition) {
		code = CodeInvalidStatusTransition
	}

	body := ErrorBody{
		Code:      code,
		Message:   "Business rule violations: " + rules.JoinMessages(reasons),
		Timestamp: at.UTC().Format(time.RFC3339),
	}
	if len(reasons) > 0 {
		body.Field = reasons[0].Field
	}
	return c.JSON(http.StatusConflict, ErrorResponse{Error: body})
}
