package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrListRoleMembersQueryIsNotConstructed = errors.New(
	"ListRoleMembersQuery must be created via NewListRoleMembersQuery constructor",
)

// ListRoleMembersQuery lists the users holding a role.
type ListRoleMembersQuery struct {
	caller user.Caller
	role   user.Role

	guard guard.ConstructorGuard
}

func NewListRoleMembersQuery(caller user.Caller, role user.Role) (ListRoleMembersQuery, error) {
	if err := caller.ID.Validate(); err != nil {
		return ListRoleMembersQuery{}, err
	}
	if _, err := user.ParseRole(string(role)); err != nil {
		return ListRoleMembersQuery{}, err
	}
	return ListRoleMembersQuery{
		caller: caller,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListRoleMembersQuery) Validate() error {
	return q.guard.Validate(ErrListRoleMembersQueryIsNotConstructed)
}

func (q ListRoleMembersQuery) Caller() user.Caller {
	return q.caller
}

func (q ListRoleMembersQuery) Role() user.Role {
	return q.role
}
