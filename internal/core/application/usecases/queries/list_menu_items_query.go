package queries

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// MenuItemFilters narrows ListMenuItemsQuery. Nil fields do not filter; set
// fields are combined with AND.
type MenuItemFilters struct {
	// Title matches items whose title contains it, ignoring case.
	Title *string
	// PriceCeiling keeps items priced at or below it.
	PriceCeiling *kernel.Money
	// Category matches the category title exactly.
	Category *string
	Featured *bool
}

type ListMenuItemsQuery struct {
	caller  user.Caller
	filters MenuItemFilters

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(caller user.Caller, filters MenuItemFilters) (ListMenuItemsQuery, error) {
	if err := caller.ID.Validate(); err != nil {
		return ListMenuItemsQuery{}, err
	}
	if filters.Title != nil && strings.TrimSpace(*filters.Title) == "" {
		filters.Title = nil
	}
	return ListMenuItemsQuery{
		caller:  caller,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Caller() user.Caller {
	return q.caller
}

func (q ListMenuItemsQuery) Filters() MenuItemFilters {
	return q.filters
}
