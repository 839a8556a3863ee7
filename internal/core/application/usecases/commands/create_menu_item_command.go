package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a menu item. The item is built, and its price
// checked, when the command is constructed, so a non-positive price fails
// the same way for every caller.
//
// Example:
//
//	price, _ := kernel.PriceFromString("12.50")
//	cmd, err := NewCreateMenuItemCommand(manager, kernel.NewUUID(), "Greek salad", price, true, categoryID)
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller user.Caller
	item   *catalog.MenuItem

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	caller user.Caller,
	id kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	if err := caller.ID.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}
	item, err := catalog.NewMenuItem(id, title, price, featured, categoryID)
	if err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{
		caller: caller,
		item:   item,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Caller() user.Caller {
	return c.caller
}

func (c CreateMenuItemCommand) MenuItem() *catalog.MenuItem {
	return c.item
}
