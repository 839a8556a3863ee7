package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/core/domain/services"
)

// GrantRoleCommandHandler adds a user to a group. Granting a held role
// succeeds without change.
type GrantRoleCommandHandler struct {
	changer roleChanger
}

func NewGrantRoleCommandHandler(uowFactory UserUoWFactory) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		changer: newRoleChanger(uowFactory, (*user.User).GrantRole),
	}
}

func (h GrantRoleCommandHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*user.User, error) {
	return h.changer.handle(ctx, cmd)
}

// RevokeRoleCommandHandler removes a user from a group. Revoking a role the
// user does not hold succeeds without change.
type RevokeRoleCommandHandler struct {
	changer roleChanger
}

func NewRevokeRoleCommandHandler(uowFactory UserUoWFactory) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{
		changer: newRoleChanger(uowFactory, (*user.User).RevokeRole),
	}
}

func (h RevokeRoleCommandHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*user.User, error) {
	return h.changer.handle(ctx, cmd)
}

type roleChanger struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
	apply      func(*user.User, user.Role) error
}

func newRoleChanger(uowFactory UserUoWFactory, apply func(*user.User, user.Role) error) roleChanger {
	return roleChanger{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		apply:      apply,
	}
}

func (h roleChanger) handle(ctx context.Context, cmd ChangeRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpManageRoles); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = h.apply(u, cmd.Role()); err != nil {
		return nil, err
	}

	if err = userRepo.UpdateRoles(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
