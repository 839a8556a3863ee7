package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	filters, err := orderFilters(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersQuery(callerFrom(c), filters)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	cmd, err := commands.NewPlaceOrderCommand(callerFrom(c), kernel.NewUUID())
	if err != nil {
		return err
	}
	placed, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(callerFrom(c), id)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// PatchOrder handles PATCH /api/v1/orders/{orderId}: a status change from the
// delivery crew or a crew assignment from a manager.
func (s *Server) PatchOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req orderPatchRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	switch {
	case req.Status != nil && req.DeliveryCrew != nil:
		return errs.NewValueIsInvalidError("set either status or delivery_crew")
	case req.Status != nil:
		cmd, err := commands.NewUpdateOrderStatusCommand(callerFrom(c), id, *req.Status)
		if err != nil {
			return err
		}
		return s.renderOrder(c, func() (*order.Order, error) {
			return s.h.UpdateStatus.Handle(c.Request().Context(), cmd)
		})
	case req.DeliveryCrew != nil:
		return s.assignCrew(c, id, *req.DeliveryCrew)
	default:
		return errs.NewValueIsRequiredError("status or delivery_crew")
	}
}

// AssignOrderCrew handles PUT /api/v1/orders/{orderId}.
func (s *Server) AssignOrderCrew(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req crewAssignmentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	return s.assignCrew(c, id, req.DeliveryCrew)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(callerFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) assignCrew(c echo.Context, orderID, crewID kernel.UUID) error {
	cmd, err := commands.NewAssignCrewCommand(callerFrom(c), orderID, crewID)
	if err != nil {
		return err
	}
	return s.renderOrder(c, func() (*order.Order, error) {
		return s.h.AssignCrew.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) renderOrder(c echo.Context, run func() (*order.Order, error)) error {
	updated, err := run()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(updated))
}
