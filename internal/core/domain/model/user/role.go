package user

import (
	"fmt"
	"strings"

	"littlelemon/internal/pkg/errs"
)

// Role is a named group a user belongs to. Roles are enumerated; any other
// name is rejected at parse time.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery-crew"
	RoleManager      Role = "manager"
)

var allRoles = []Role{RoleCustomer, RoleDeliveryCrew, RoleManager}

// ParseRole maps a group name to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range allRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("unknown role %q", s))
}

// IsAssignable reports whether the role may be granted or revoked through the
// role directory. Customer membership is managed by account registration.
func (r Role) IsAssignable() bool {
	return r == RoleManager || r == RoleDeliveryCrew
}

func (r Role) String() string {
	return string(r)
}

func (r Role) bit() RoleSet {
	switch r {
	case RoleCustomer:
		return 1 << 0
	case RoleDeliveryCrew:
		return 1 << 1
	case RoleManager:
		return 1 << 2
	default:
		return 0
	}
}

// RoleSet is the explicit set of roles held by a caller.
type RoleSet uint8

// NewRoleSet builds a set from the given roles. Unknown roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= r.bit()
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	b := r.bit()
	return b != 0 && s&b == b
}

// HasAny reports whether the set shares at least one role with other.
func (s RoleSet) HasAny(other RoleSet) bool {
	return s&other != 0
}

func (s RoleSet) With(r Role) RoleSet {
	return s | r.bit()
}

func (s RoleSet) Without(r Role) RoleSet {
	return s &^ r.bit()
}

func (s RoleSet) IsEmpty() bool {
	return s == 0
}

// Roles lists the members in declaration order.
func (s RoleSet) Roles() []Role {
	roles := make([]Role, 0, len(allRoles))
	for _, r := range allRoles {
		if s.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(allRoles))
	for _, r := range s.Roles() {
		names = append(names, string(r))
	}
	return "[" + strings.Join(names, ",") + "]"
}
