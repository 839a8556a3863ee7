package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a category to the catalog. Slug and title are
// validated by the catalog model when the command is built.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	caller   user.Caller
	category *catalog.Category

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(caller user.Caller, id kernel.UUID, slug, title string) (CreateCategoryCommand, error) {
	if err := caller.ID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}
	category, err := catalog.NewCategory(id, slug, title)
	if err != nil {
		return CreateCategoryCommand{}, err
	}
	return CreateCategoryCommand{
		caller:   caller,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Caller() user.Caller {
	return c.caller
}

func (c CreateCategoryCommand) Category() *catalog.Category {
	return c.category
}
