package order

import (
	"fmt"

	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/pkg/errs"
)

// ItemStatus is the production state of a single order item. Items move
// independently of their order; an order can only ship once every item is
// completed or cancelled.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemPending
	ItemInDesign
	ItemInProduction
	ItemQualityCheck
	ItemOnHold
	ItemCompleted
	ItemCancelled
)

func getItemStatusStrings() lifecycle.Names[ItemStatus] {
	return lifecycle.Names[ItemStatus]{
		ItemPending:      "pending",
		ItemInDesign:     "in_design",
		ItemInProduction: "in_production",
		ItemQualityCheck: "quality_check",
		ItemOnHold:       "on_hold",
		ItemCompleted:    "completed",
		ItemCancelled:    "cancelled",
	}
}

var itemTransitions = lifecycle.NewTable(map[ItemStatus][]ItemStatus{
	ItemPending:      {ItemInDesign, ItemInProduction, ItemCancelled},
	ItemInDesign:     {ItemInProduction, ItemOnHold, ItemCancelled},
	ItemInProduction: {ItemQualityCheck, ItemOnHold, ItemCancelled},
	ItemQualityCheck: {ItemCompleted, ItemInProduction, ItemCancelled},
	ItemOnHold:       {ItemInDesign, ItemInProduction, ItemCancelled},
	ItemCompleted:    {},
	ItemCancelled:    {},
})

// ItemTransitions returns the order item status table.
func ItemTransitions() lifecycle.Table[ItemStatus] {
	return itemTransitions
}

// IsValidItemTransition reports whether an order item may move from one status to another.
func IsValidItemTransition(from, to ItemStatus) bool {
	return itemTransitions.IsValidTransition(from, to)
}

// ParseItemStatus converts a wire code into an ItemStatus.
func ParseItemStatus(code string) (ItemStatus, error) {
	if s, ok := getItemStatusStrings().Parse(code); ok {
		return s, nil
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%q is not a valid order item status", code),
	)
}

func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	return getItemStatusStrings().Code(s, "unknown")
}

func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	return IsValidItemTransition(s, next)
}

// IsFinished reports whether the item no longer blocks shipment of its order.
func (s ItemStatus) IsFinished() bool {
	return s == ItemCompleted || s == ItemCancelled
}

func (s ItemStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *ItemStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseItemStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
