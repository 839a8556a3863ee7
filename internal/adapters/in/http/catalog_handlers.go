package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(c echo.Context) error {
	query, err := queries.NewListCategoriesQuery(callerFrom(c))
	if err != nil {
		return err
	}
	categories, err := s.h.ListCategories.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req newCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCategoryCommand(callerFrom(c), kernel.NewUUID(), req.Slug, req.Title)
	if err != nil {
		return err
	}
	category, err := s.h.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoryView(category))
}

// DeleteCategory handles DELETE /api/v1/categories/{categoryId}.
func (s *Server) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "categoryId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteCategoryCommand(callerFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteCategory.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMenuItems handles GET /api/v1/menu-items.
func (s *Server) ListMenuItems(c echo.Context) error {
	filters, err := menuItemFilters(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListMenuItemsQuery(callerFrom(c), filters)
	if err != nil {
		return err
	}
	items, err := s.h.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetMenuItem handles GET /api/v1/menu-items/{menuItemId}.
func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "menuItemId")
	if err != nil {
		return err
	}
	return s.renderMenuItem(c, http.StatusOK, id)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuItemCommand(
		callerFrom(c), kernel.NewUUID(), req.Title, req.Price, req.Featured, req.Category,
	)
	if err != nil {
		return err
	}
	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.renderMenuItem(c, http.StatusCreated, item.ID())
}

// ReplaceMenuItem handles PUT /api/v1/menu-items/{menuItemId}.
func (s *Server) ReplaceMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "menuItemId")
	if err != nil {
		return err
	}
	var req menuItemRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReplaceMenuItemCommand(
		callerFrom(c), id, req.Title, req.Price, req.Featured, req.Category,
	)
	if err != nil {
		return err
	}
	return s.updateMenuItem(c, cmd)
}

// PatchMenuItem handles PATCH /api/v1/menu-items/{menuItemId}.
func (s *Server) PatchMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "menuItemId")
	if err != nil {
		return err
	}
	var req menuItemPatchRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(callerFrom(c), id, commands.MenuItemChanges{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.Category,
	})
	if err != nil {
		return err
	}
	return s.updateMenuItem(c, cmd)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "menuItemId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteMenuItemCommand(callerFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) updateMenuItem(c echo.Context, cmd commands.UpdateMenuItemCommand) error {
	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.renderMenuItem(c, http.StatusOK, item.ID())
}

// renderMenuItem responds with the read model so writes and reads share one
// representation.
func (s *Server) renderMenuItem(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetMenuItemQuery(callerFrom(c), id)
	if err != nil {
		return err
	}
	view, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, view)
}
