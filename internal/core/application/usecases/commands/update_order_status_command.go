package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand sets the delivery status of an order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	caller  user.Caller
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand takes the already parsed boolean status; any
// other representation must be rejected by the transport.
func NewUpdateOrderStatusCommand(caller user.Caller, orderID kernel.UUID, delivered bool) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(caller.ID.Validate(), orderID.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		caller:  caller,
		orderID: orderID,
		status:  order.StatusFromDelivered(delivered),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Caller() user.Caller {
	return c.caller
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
