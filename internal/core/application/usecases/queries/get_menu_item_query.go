package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

type GetMenuItemQuery struct {
	caller     user.Caller
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(caller user.Caller, menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := errors.Join(caller.ID.Validate(), menuItemID.Validate()); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{
		caller:     caller,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) Caller() user.Caller {
	return q.caller
}

func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
