package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

type ListCategoriesQuery struct {
	caller user.Caller

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(caller user.Caller) (ListCategoriesQuery, error) {
	if err := caller.ID.Validate(); err != nil {
		return ListCategoriesQuery{}, err
	}
	return ListCategoriesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

func (q ListCategoriesQuery) Caller() user.Caller {
	return q.caller
}
