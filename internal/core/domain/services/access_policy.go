package services

import (
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"
)

// Operation names a role-gated use case.
type Operation string

const (
	OpAddCartItem       Operation = "AddCartItem"
	OpListCart          Operation = "ListCart"
	OpClearCart         Operation = "ClearCart"
	OpPlaceOrder        Operation = "PlaceOrder"
	OpListOrders        Operation = "ListOrders"
	OpGetOrder          Operation = "GetOrder"
	OpUpdateOrderStatus Operation = "UpdateOrderStatus"
	OpAssignCrew        Operation = "AssignCrew"
	OpDeleteOrder       Operation = "DeleteOrder"
	OpBrowseCatalog     Operation = "BrowseCatalog"
	OpManageCatalog     Operation = "ManageCatalog"
	OpManageRoles       Operation = "ManageRoles"
)

var (
	customerOnly = user.NewRoleSet(user.RoleCustomer)
	crewOnly     = user.NewRoleSet(user.RoleDeliveryCrew)
	managerOnly  = user.NewRoleSet(user.RoleManager)
	anyRole      = user.NewRoleSet(user.RoleCustomer, user.RoleDeliveryCrew, user.RoleManager)
)

var requiredRoles = map[Operation]user.RoleSet{
	OpAddCartItem:       customerOnly,
	OpListCart:          customerOnly,
	OpClearCart:         customerOnly,
	OpPlaceOrder:        customerOnly,
	OpListOrders:        anyRole,
	OpGetOrder:          user.NewRoleSet(user.RoleDeliveryCrew, user.RoleManager),
	OpUpdateOrderStatus: crewOnly,
	OpAssignCrew:        managerOnly,
	OpDeleteOrder:       managerOnly,
	OpBrowseCatalog:     anyRole,
	OpManageCatalog:     managerOnly,
	OpManageRoles:       managerOnly,
}

// AccessPolicy decides whether a caller may run an operation. It is a pure
// function of the caller's role set; a caller needs at least one of the
// roles the operation lists.
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(caller, services.OpPlaceOrder); err != nil {
//	    return err // errs.ErrAccessDenied
//	}
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns an *errs.AccessDeniedError when the caller holds none of
// the roles required by op. Unknown operations are always denied.
func (AccessPolicy) Authorize(caller user.Caller, op Operation) error {
	roles, ok := requiredRoles[op]
	if !ok || !caller.Roles.HasAny(roles) {
		return errs.NewAccessDeniedError(string(op))
	}
	return nil
}

// RequiredRoles lists the roles that grant op.
func (AccessPolicy) RequiredRoles(op Operation) []user.Role {
	return requiredRoles[op].Roles()
}
