package order

import (
	"errors"
	"fmt"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for Item values not built by NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line. It is owned by the Order aggregate.
type Item struct {
	id            kernel.UUID
	productName   string
	quantity      int
	priceSnapshot float64
	status        ItemStatus

	isConstructed bool
}

// NewItem creates an item in ItemPending status.
func NewItem(id kernel.UUID, productName string, quantity int, priceSnapshot float64) (Item, error) {
	return RestoreItem(id, productName, quantity, priceSnapshot, ItemPending)
}

// RestoreItem rebuilds an item from persisted state.
func RestoreItem(
	id kernel.UUID,
	productName string,
	quantity int,
	priceSnapshot float64,
	status ItemStatus,
) (Item, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if priceSnapshot < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"priceSnapshot is invalid", fmt.Errorf("%.2f is negative", priceSnapshot)))
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		id:            id,
		productName:   productName,
		quantity:      quantity,
		priceSnapshot: priceSnapshot,
		status:        status,
		isConstructed: true,
	}, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() kernel.UUID { return i.id }
func (i Item) ProductName() string { return i.productName }
func (i Item) Quantity() int { return i.quantity }
func (i Item) PriceSnapshot() float64 { return i.priceSnapshot }
func (i Item) Status() ItemStatus { return i.status }

// LineTotal is quantity multiplied by the price snapshot.
func (i Item) LineTotal() float64 {
	return float64(i.quantity) * i.priceSnapshot
}
