package user

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrUsernameIsRequired is returned for an empty username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrRoleIsNotAssignable is returned when granting or revoking customer membership.
	ErrRoleIsNotAssignable = errs.NewValueIsInvalidError("role must be manager or delivery-crew")
)

// User is an account known to the ordering domain together with its role set.
// Credentials are held by the identity provider, not here.
type User struct {
	id       kernel.UUID
	username string
	roles    RoleSet
	guard    guard.ConstructorGuard
}

// NewUser creates a user holding the given roles.
func NewUser(id kernel.UUID, username string, roles RoleSet) (*User, error) {
	u := &User{
		roles: roles,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(id kernel.UUID, username string, roles RoleSet) (*User, error) {
	return NewUser(id, username, roles)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Roles() RoleSet {
	return u.roles
}

// IsCrew reports whether the user may be assigned to deliver orders.
func (u *User) IsCrew() bool {
	return u.roles.Has(RoleDeliveryCrew)
}

// GrantRole adds an assignable role. Granting a role already held is a no-op.
func (u *User) GrantRole(r Role) error {
	if !r.IsAssignable() {
		return ErrRoleIsNotAssignable
	}
	u.roles = u.roles.With(r)
	return nil
}

// RevokeRole removes an assignable role. Revoking a role not held is a no-op.
func (u *User) RevokeRole(r Role) error {
	if !r.IsAssignable() {
		return ErrRoleIsNotAssignable
	}
	u.roles = u.roles.Without(r)
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}
