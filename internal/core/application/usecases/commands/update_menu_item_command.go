package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	// ErrMenuItemChangesAreRequired is returned for a patch that sets no field.
	ErrMenuItemChangesAreRequired = errs.NewValueIsRequiredError("menu item fields")
)

// MenuItemChanges lists the fields to overwrite. Nil fields keep their value.
type MenuItemChanges struct {
	Title      *string
	Price      *kernel.Money
	Featured   *bool
	CategoryID *kernel.UUID
}

func (ch MenuItemChanges) isEmpty() bool {
	return ch.Title == nil && ch.Price == nil && ch.Featured == nil && ch.CategoryID == nil
}

// UpdateMenuItemCommand changes an existing menu item. NewReplaceMenuItemCommand
// overwrites every field; NewUpdateMenuItemCommand applies a partial patch.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller     user.Caller
	menuItemID kernel.UUID
	changes    MenuItemChanges

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand builds a partial update. At least one field must be set.
func NewUpdateMenuItemCommand(caller user.Caller, menuItemID kernel.UUID, changes MenuItemChanges) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		caller.ID.Validate(),
		menuItemID.Validate(),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.caller = caller
	cmd.menuItemID = menuItemID
	return cmd, nil
}

// NewReplaceMenuItemCommand builds a full replacement.
func NewReplaceMenuItemCommand(
	caller user.Caller,
	menuItemID kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (UpdateMenuItemCommand, error) {
	return NewUpdateMenuItemCommand(caller, menuItemID, MenuItemChanges{
		Title:      &title,
		Price:      &price,
		Featured:   &featured,
		CategoryID: &categoryID,
	})
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Caller() user.Caller {
	return c.caller
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c UpdateMenuItemCommand) Changes() MenuItemChanges {
	return c.changes
}

func (c *UpdateMenuItemCommand) setChanges(changes MenuItemChanges) error {
	if changes.isEmpty() {
		return ErrMenuItemChangesAreRequired
	}
	if changes.Price != nil {
		if _, err := kernel.NewPrice(changes.Price.Decimal()); err != nil {
			return err
		}
	}
	if changes.CategoryID != nil {
		if err := changes.CategoryID.Validate(); err != nil {
			return err
		}
	}
	c.changes = changes
	return nil
}
