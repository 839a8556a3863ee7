package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order and its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	caller  user.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(caller user.Caller, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(caller.ID.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Caller() user.Caller {
	return c.caller
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
