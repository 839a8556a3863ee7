package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListCartItems handles GET /api/v1/cart/menu-items.
func (s *Server) ListCartItems(c echo.Context) error {
	query, err := queries.NewListCartItemsQuery(callerFrom(c))
	if err != nil {
		return err
	}
	resp, err := s.h.ListCartItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// AddCartItem handles POST /api/v1/cart/menu-items. Quantity defaults to 1.
func (s *Server) AddCartItem(c echo.Context) error {
	var req newCartItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cmd, err := commands.NewAddCartItemCommand(callerFrom(c), req.MenuItem, quantity)
	if err != nil {
		return err
	}
	line, err := s.h.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCartLineResponse(line))
}

// ClearCart handles DELETE /api/v1/cart/menu-items.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(callerFrom(c))
	if err != nil {
		return err
	}
	if err = s.h.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
