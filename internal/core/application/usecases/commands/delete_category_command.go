package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	caller     user.Caller
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(caller user.Caller, categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	if err := errors.Join(caller.ID.Validate(), categoryID.Validate()); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{
		caller:     caller,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) Caller() user.Caller {
	return c.caller
}

func (c DeleteCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
