package lifecycle

// Kind identifies an entity kind governed by the engine.
type Kind int

const (
	// KindUnknown is the zero value and never names a real entity.
	KindUnknown Kind = iota
	KindOrder
	KindOrderItem
	KindWorkOrder
	KindDesignJob
	KindPurchaseOrder
	KindInventory
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:       "unknown",
		KindOrder:         "order",
		KindOrderItem:     "order_item",
		KindWorkOrder:     "work_order",
		KindDesignJob:     "design_job",
		KindPurchaseOrder: "purchase_order",
		KindInventory:     "inventory",
	}
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindOrder, KindOrderItem, KindWorkOrder, KindDesignJob, KindPurchaseOrder, KindInventory}
}
