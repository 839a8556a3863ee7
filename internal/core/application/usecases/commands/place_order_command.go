package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns the caller's cart into an order with the given id.
//
// Example:
//
//	cmd, _ := NewPlaceOrderCommand(caller, kernel.NewUUID())
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrEmptyCart) {
//	    // nothing to order
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	caller  user.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(caller user.Caller, orderID kernel.UUID) (PlaceOrderCommand, error) {
	if err := errors.Join(caller.ID.Validate(), orderID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}
	return PlaceOrderCommand{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Caller() user.Caller {
	return c.caller
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
