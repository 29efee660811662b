package rules

// Code is the machine-readable identifier of a violated rule.
type Code string

const (
	CodeInvalidCustomerOrg        Code = "INVALID_CUSTOMER_ORG"
	CodeInvalidTotalCalculation   Code = "INVALID_TOTAL_CALCULATION"
	CodeDueDateTooSoon            Code = "DUE_DATE_TOO_SOON"
	CodeDueDateTooFar             Code = "DUE_DATE_TOO_FAR"
	CodeLowProfitMargin           Code = "LOW_PROFIT_MARGIN"
	CodeHighQuantity              Code = "HIGH_QUANTITY_WARNING"
	CodeInvalidStatusTransition   Code = "INVALID_STATUS_TRANSITION"
	CodeIncompleteItemsCannotShip Code = "INCOMPLETE_ITEMS_CANNOT_SHIP"
	CodePaymentVerificationNeeded Code = "PAYMENT_VERIFICATION_REQUIRED"
	CodeEntityNotFound            Code = "ENTITY_NOT_FOUND"
	CodeOrderItemNotFound         Code = "ORDER_ITEM_NOT_FOUND"
	CodeDesignerOverloaded        Code = "DESIGNER_OVERLOADED"
	CodeManufacturerOverloaded    Code = "MANUFACTURER_OVERLOADED"
	CodeInvalidQuantity           Code = "INVALID_QUANTITY"
	CodeInvalidDateRange          Code = "INVALID_DATE_RANGE"
	CodeMaterialNotFound          Code = "MATERIAL_NOT_FOUND"
	CodeMaterialInactive          Code = "MATERIAL_INACTIVE"
	CodeInvalidUnitCost           Code = "INVALID_UNIT_COST"
	CodeHighValuePurchaseOrder    Code = "HIGH_VALUE_PURCHASE_ORDER"
	CodeNegativeStock             Code = "NEGATIVE_STOCK"
	CodeInvalidReservation        Code = "INVALID_RESERVATION"
	CodeLowStock                  Code = "LOW_STOCK"
	CodeValidationSystemError     Code = "VALIDATION_SYSTEM_ERROR"
)

// FieldGeneral is used for violations that are not tied to a payload field.
const FieldGeneral = "general"

// Violation is a single failed rule. Violations are values and are never
// modified after creation.
type Violation struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
}

// NewError creates an error-severity violation.
func NewError(field string, code Code, message string) Violation {
	return Violation{Field: field, Message: message, Code: code, Severity: SeverityError}
}

// NewWarning creates a warning-severity violation.
func NewWarning(field string, code Code, message string) Violation {
	return Violation{Field: field, Message: message, Code: code, Severity: SeverityWarning}
}

// SystemError is the violation reported when rules could not be verified.
func SystemError() Violation {
	return NewError(FieldGeneral, CodeValidationSystemError, "Unable to verify business rules")
}

// IsWarning reports whether v is advisory. Any other severity, including an
// unrecognized one, is treated as an error.
func (v Violation) IsWarning() bool {
	return v.Severity == SeverityWarning
}
