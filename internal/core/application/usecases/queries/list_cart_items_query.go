package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListCartItemsQueryIsNotConstructed = errors.New(
	"ListCartItemsQuery must be created via NewListCartItemsQuery constructor",
)

type ListCartItemsQuery struct {
	caller user.Caller

	guard guard.ConstructorGuard
}

func NewListCartItemsQuery(caller user.Caller) (ListCartItemsQuery, error) {
	if err := caller.ID.Validate(); err != nil {
		return ListCartItemsQuery{}, err
	}
	return ListCartItemsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCartItemsQueryIsNotConstructed)
}

func (q ListCartItemsQuery) Caller() user.Caller {
	return q.caller
}

// ListCartItemsQueryResponse is the caller's cart with its derived total.
type ListCartItemsQueryResponse struct {
	Items []CartItemView `json:"items"`
	Total kernel.Money   `json:"total"`
}
