package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrAssignCrewCommandIsNotConstructed = errors.New(
	"AssignCrewCommand must be created via NewAssignCrewCommand constructor",
)

// AssignCrewCommand hands an order to a delivery crew member.
//
// Example:
//
//	cmd, _ := NewAssignCrewCommand(manager, orderID, crewUserID)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInvalidCrewAssignment) {
//	    // crewUserID is unknown or not in the delivery-crew group
//	}
type AssignCrewCommand struct { //nolint:recvcheck //using for validation
	caller  user.Caller
	orderID kernel.UUID
	crewID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCrewCommand(caller user.Caller, orderID, crewID kernel.UUID) (AssignCrewCommand, error) {
	if err := errors.Join(caller.ID.Validate(), orderID.Validate(), crewID.Validate()); err != nil {
		return AssignCrewCommand{}, err
	}
	return AssignCrewCommand{
		caller:  caller,
		orderID: orderID,
		crewID:  crewID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignCrewCommandIsNotConstructed)
}

func (c AssignCrewCommand) Caller() user.Caller {
	return c.caller
}

func (c AssignCrewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignCrewCommand) CrewID() kernel.UUID {
	return c.crewID
}
