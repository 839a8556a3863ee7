package queries

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilters narrows a manager's order listing. Nil fields do not filter;
// set fields are combined with AND. Filters are ignored for other callers.
type OrderFilters struct {
	// Date keeps orders placed on that calendar day in UTC.
	Date *time.Time
	// Delivered keeps orders with that status.
	Delivered *bool
	// TotalCeiling keeps orders whose total is at or below it.
	TotalCeiling *kernel.Money
	UserID       *kernel.UUID
	CrewID       *kernel.UUID
}

// ListOrdersQuery lists the orders visible to the caller: every order for a
// manager, assigned orders for delivery crew, own orders for a customer. When
// the caller holds several roles the broadest view wins.
type ListOrdersQuery struct {
	caller  user.Caller
	filters OrderFilters

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(caller user.Caller, filters OrderFilters) (ListOrdersQuery, error) {
	if err := caller.ID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	for _, id := range []*kernel.UUID{filters.UserID, filters.CrewID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{
		caller:  caller,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Caller() user.Caller {
	return q.caller
}

func (q ListOrdersQuery) Filters() OrderFilters {
	return q.filters
}
