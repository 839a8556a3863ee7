package user

import "littlelemon/internal/core/domain/model/kernel"

// Caller is the authenticated identity on whose behalf an operation runs.
type Caller struct {
	ID    kernel.UUID
	Roles RoleSet
}

func NewCaller(id kernel.UUID, roles ...Role) Caller {
	return Caller{ID: id, Roles: NewRoleSet(roles...)}
}

// CallerOf derives the caller identity of a stored user.
func CallerOf(u *User) Caller {
	return Caller{ID: u.ID(), Roles: u.Roles()}
}

func (c Caller) IsManager() bool {
	return c.Roles.Has(RoleManager)
}

func (c Caller) IsCrew() bool {
	return c.Roles.Has(RoleDeliveryCrew)
}

func (c Caller) IsCustomer() bool {
	return c.Roles.Has(RoleCustomer)
}
