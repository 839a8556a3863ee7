package http

import (
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use cases exposed over HTTP.
type Handlers struct {
	// Commands
	CreateCategory commands.CreateCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler
	CreateMenuItem commands.CreateMenuItemCommandHandler
	UpdateMenuItem commands.UpdateMenuItemCommandHandler
	DeleteMenuItem commands.DeleteMenuItemCommandHandler
	AddCartItem    commands.AddCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler
	PlaceOrder     commands.PlaceOrderCommandHandler
	UpdateStatus   commands.UpdateOrderStatusCommandHandler
	AssignCrew     commands.AssignCrewCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	GrantRole      commands.GrantRoleCommandHandler
	RevokeRole     commands.RevokeRoleCommandHandler

	// Queries
	ListCategories  queries.ListCategoriesQueryHandler
	ListMenuItems   queries.ListMenuItemsQueryHandler
	GetMenuItem     queries.GetMenuItemQueryHandler
	ListCartItems   queries.ListCartItemsQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	ListRoleMembers queries.ListRoleMembersQueryHandler
}

// Server translates HTTP requests into commands and queries.
// Every handler expects the caller to have been stored by Authenticator.
type Server struct {
	h      Handlers
	policy services.AccessPolicy
}

func NewServer(h Handlers) *Server {
	return &Server{h: h, policy: services.NewAccessPolicy()}
}

// Register mounts the API routes on g. Each route checks the caller's roles
// first, then validates the request, then runs the handler.
func (s *Server) Register(g *echo.Group, validator *RequestValidator) {
	route := func(ops ...services.Operation) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{requireAny(s.policy, ops...), validator.Middleware()}
	}

	g.GET("/categories", s.ListCategories, route(services.OpBrowseCatalog)...)
	g.POST("/categories", s.CreateCategory, route(services.OpManageCatalog)...)
	g.DELETE("/categories/:categoryId", s.DeleteCategory, route(services.OpManageCatalog)...)

	g.GET("/menu-items", s.ListMenuItems, route(services.OpBrowseCatalog)...)
	g.POST("/menu-items", s.CreateMenuItem, route(services.OpManageCatalog)...)
	g.GET("/menu-items/:menuItemId", s.GetMenuItem, route(services.OpBrowseCatalog)...)
	g.PUT("/menu-items/:menuItemId", s.ReplaceMenuItem, route(services.OpManageCatalog)...)
	g.PATCH("/menu-items/:menuItemId", s.PatchMenuItem, route(services.OpManageCatalog)...)
	g.DELETE("/menu-items/:menuItemId", s.DeleteMenuItem, route(services.OpManageCatalog)...)

	g.GET("/cart/menu-items", s.ListCartItems, route(services.OpListCart)...)
	g.POST("/cart/menu-items", s.AddCartItem, route(services.OpAddCartItem)...)
	g.DELETE("/cart/menu-items", s.ClearCart, route(services.OpClearCart)...)

	g.GET("/orders", s.ListOrders, route(services.OpListOrders)...)
	g.POST("/orders", s.PlaceOrder, route(services.OpPlaceOrder)...)
	g.GET("/orders/:orderId", s.GetOrder, route(services.OpGetOrder)...)
	g.PATCH("/orders/:orderId", s.PatchOrder, route(services.OpUpdateOrderStatus, services.OpAssignCrew)...)
	g.PUT("/orders/:orderId", s.AssignOrderCrew, route(services.OpAssignCrew)...)
	g.DELETE("/orders/:orderId", s.DeleteOrder, route(services.OpDeleteOrder)...)

	g.GET("/groups/:role/users", s.ListGroupMembers, route(services.OpManageRoles)...)
	g.POST("/groups/:role/users", s.GrantGroupMembership, route(services.OpManageRoles)...)
	g.DELETE("/groups/:role/users/:userId", s.RevokeGroupMembership, route(services.OpManageRoles)...)
}

func bindBody(c echo.Context, dest any) error {
	return (&echo.DefaultBinder{}).BindBody(c, dest)
}
