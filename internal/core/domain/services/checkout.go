package services

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checking out a cart without lines.
var ErrCartIsEmpty = errors.New("cart is empty")

// Checkout turns a customer's cart lines into an order: one item per line
// carrying the line's quantity, unit price and line total, with the order
// total accumulated from the line totals.
type Checkout struct{}

func NewCheckout() Checkout {
	return Checkout{}
}

// PlaceOrder builds the order snapshot. Every line must belong to ownerID and
// the total may not exceed kernel.MaxTotal.
func (Checkout) PlaceOrder(orderID, ownerID kernel.UUID, lines []*cart.Line, now time.Time) (*order.Order, error) {
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if !l.UserID().IsEqual(ownerID) {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart line",
				fmt.Errorf("line for menu item %s belongs to another user", l.MenuItemID()))
		}
		item, err := order.RestoreItem(l.MenuItemID(), l.Quantity(), l.UnitPrice(), l.LineTotal())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(orderID, ownerID, items, now)
	if err != nil {
		return nil, err
	}
	if total := o.Total().Decimal(); total.GreaterThan(kernel.MaxTotal) {
		return nil, errs.NewValueIsOutOfRangeError("order total", total.StringFixed(2), "0.00", kernel.MaxTotal.StringFixed(2))
	}
	return o, nil
}
