package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller     user.Caller
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(caller user.Caller, menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(caller.ID.Validate(), menuItemID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{
		caller:     caller,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Caller() user.Caller {
	return c.caller
}

func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
