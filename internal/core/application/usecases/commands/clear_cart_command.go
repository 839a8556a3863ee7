package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	caller user.Caller

	guard guard.ConstructorGuard
}

func NewClearCartCommand(caller user.Caller) (ClearCartCommand, error) {
	if err := caller.ID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Caller() user.Caller {
	return c.caller
}
