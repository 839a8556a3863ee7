package order

import (
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

// Item is the snapshot of one cart line taken when the order was placed.
// Later catalog changes never alter it.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
}

// NewItem builds an item and derives its line total.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "∞")
	}
	if _, err := kernel.NewPrice(unitPrice.Decimal()); err != nil {
		return Item{}, err
	}
	return Item{
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  unitPrice.Mul(quantity),
	}, nil
}

// RestoreItem rebuilds a stored item and checks its line total.
func RestoreItem(menuItemID kernel.UUID, quantity int, unitPrice, lineTotal kernel.Money) (Item, error) {
	it, err := NewItem(menuItemID, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	if !it.lineTotal.IsEqual(lineTotal) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("line_total",
			fmt.Errorf("%s != %d * %s", lineTotal, quantity, unitPrice))
	}
	return it, nil
}

func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}
