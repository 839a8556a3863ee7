package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts quantity units of a menu item into the caller's cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(caller, menuItemID, 2)
//	if err != nil {
//	    return err
//	}
//	line, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	caller     user.Caller
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand validates the ids and that quantity lies in
// [1, cart.MaxQuantity].
func NewAddCartItemCommand(caller user.Caller, menuItemID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Caller() user.Caller {
	return c.caller
}

func (c AddCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCaller(caller user.Caller) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
