package rules

import (
	"errors"
	"fmt"
	"math"
	"time"

	"governance/internal/pkg/errs"
)

// Workload limits. An assignee is overloaded when the number of their other
// active jobs is strictly greater than the limit.
const (
	DesignerJobLimit           = 10
	ManufacturerWorkOrderLimit = 20
)

const (
	totalTolerance     = 0.01
	minLeadTimeDays    = 1
	maxLeadTimeDays    = 365
	minProfitMarginPct = 10.0
	highItemQuantity   = 1000
	highValuePOAmount  = 100000.0
)

// wholeDaysUntil returns the number of complete days from now to t. Past
// dates yield negative values.
func wholeDaysUntil(now, t time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

func totalMismatch(field string, calculated, submitted float64) (Violation, bool) {
	if math.Abs(calculated-submitted) <= totalTolerance {
		return Violation{}, false
	}
	return NewError(field, CodeInvalidTotalCalculation, fmt.Sprintf(
		"Total amount %.2f does not match calculated total %.2f", submitted, calculated)), true
}

func dueDateTooSoon(field string, now, due time.Time) (Violation, bool) {
	if days := wholeDaysUntil(now, due); days < minLeadTimeDays {
		return NewError(field, CodeDueDateTooSoon, fmt.Sprintf(
			"Due date must be at least %d day in the future", minLeadTimeDays)), true
	}
	return Violation{}, false
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
