package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order. Delivery crew only see orders assigned to
// them; any other order is reported as not found.
type GetOrderQuery struct {
	caller  user.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(caller user.Caller, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(caller.ID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Caller() user.Caller {
	return q.caller
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
