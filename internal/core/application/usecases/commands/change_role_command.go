package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrChangeRoleCommandIsNotConstructed = errors.New(
	"ChangeRoleCommand must be created via NewChangeRoleCommand constructor",
)

// ChangeRoleCommand names a user and a group for GrantRoleCommandHandler and
// RevokeRoleCommandHandler. Only manager and delivery-crew memberships can
// be changed.
type ChangeRoleCommand struct { //nolint:recvcheck //using for validation
	caller user.Caller
	role   user.Role
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewChangeRoleCommand(caller user.Caller, role user.Role, userID kernel.UUID) (ChangeRoleCommand, error) {
	cmd := ChangeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		caller.ID.Validate(),
		userID.Validate(),
		cmd.setRole(role),
	); err != nil {
		return ChangeRoleCommand{}, err
	}

	cmd.caller = caller
	cmd.userID = userID
	return cmd, nil
}

func (c ChangeRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeRoleCommandIsNotConstructed)
}

func (c ChangeRoleCommand) Caller() user.Caller {
	return c.caller
}

func (c ChangeRoleCommand) Role() user.Role {
	return c.role
}

func (c ChangeRoleCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ChangeRoleCommand) setRole(role user.Role) error {
	if !role.IsAssignable() {
		return user.ErrRoleIsNotAssignable
	}
	c.role = role
	return nil
}
