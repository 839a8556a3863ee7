package commands

import (
	"context"
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// ErrInvalidCrewAssignment is returned when the assignee does not exist or
// does not hold the delivery-crew role.
var ErrInvalidCrewAssignment = errs.NewValueIsInvalidError("delivery_crew")

// AssignCrewCommandHandler lets a manager assign an order to delivery crew.
type AssignCrewCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewAssignCrewCommandHandler(uowFactory OrderUoWFactory) AssignCrewCommandHandler {
	return AssignCrewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown order and with
// ErrInvalidCrewAssignment for an ineligible assignee.
func (h AssignCrewCommandHandler) Handle(ctx context.Context, cmd AssignCrewCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Caller(), services.OpAssignCrew); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	crew, err := uow.UserRepository().Get(ctx, cmd.CrewID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: user %s does not exist", ErrInvalidCrewAssignment, cmd.CrewID())
	}
	if err != nil {
		return nil, err
	}
	if !crew.IsCrew() {
		return nil, fmt.Errorf("%w: user %s is not delivery crew", ErrInvalidCrewAssignment, cmd.CrewID())
	}

	if err = o.AssignCrew(crew.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
