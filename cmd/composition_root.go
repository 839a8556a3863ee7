package cmd

import (
	"context"
	"log/slog"

	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MenuCache is the optional cache shared by the menu item read and write paths.
type MenuCache interface {
	queries.MenuItemViewCache
	commands.MenuItemCache
}

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	menuCache  MenuCache
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. menuCache and publisher may be nil:
// without a cache every menu item read hits the database, and without a
// publisher no relay job is scheduled.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	menuCache MenuCache,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		menuCache:  menuCache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// cacheInvalidator returns nil rather than a typed nil interface when no
// cache is configured.
func (c *CompositionRoot) cacheInvalidator() commands.MenuItemCache {
	if c.menuCache == nil {
		return nil
	}
	return c.menuCache
}

func (c *CompositionRoot) viewCache() queries.MenuItemViewCache {
	if c.menuCache == nil {
		return nil
	}
	return c.menuCache
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCategory: commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		DeleteCategory: commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory()),
		CreateMenuItem: commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory()),
		UpdateMenuItem: commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory(), c.cacheInvalidator()),
		DeleteMenuItem: commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory(), c.cacheInvalidator()),
		AddCartItem:    commands.NewAddCartItemCommandHandler(c.cartUoWFactory()),
		ClearCart:      commands.NewClearCartCommandHandler(c.cartUoWFactory()),
		PlaceOrder:     commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory()),
		UpdateStatus:   commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory()),
		AssignCrew:     commands.NewAssignCrewCommandHandler(c.orderUoWFactory()),
		DeleteOrder:    commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		GrantRole:      commands.NewGrantRoleCommandHandler(c.userUoWFactory()),
		RevokeRole:     commands.NewRevokeRoleCommandHandler(c.userUoWFactory()),

		ListCategories:  queries.NewListCategoriesQueryHandler(c.gormDB),
		ListMenuItems:   queries.NewListMenuItemsQueryHandler(c.gormDB),
		GetMenuItem:     queries.NewGetMenuItemQueryHandler(c.gormDB, c.viewCache()),
		ListCartItems:   queries.NewListCartItemsQueryHandler(c.gormDB),
		ListOrders:      queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB),
		ListRoleMembers: queries.NewListRoleMembersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateGetCallerQueryHandler() queries.GetCallerQueryHandler {
	return queries.NewGetCallerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRelayOutboxEventsCommandHandler() commands.RelayOutboxEventsCommandHandler {
	return commands.NewRelayOutboxEventsCommandHandler(c.outboxUoWFactory(), c.publisher)
}

// CreateRouter builds the HTTP entry point.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	auth, err := httpin.NewAuthenticator(c.configs.JWTSecret, c.CreateGetCallerQueryHandler())
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(ctx, httpin.RouterConfig{
		Server:        httpin.NewServer(c.CreateHandlers()),
		Authenticator: auth,
		Logger:        c.logger,
	})
}

// CreateJobManager registers the outbox relay when an event publisher is
// configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager()
	if c.publisher != nil {
		jm.Register("outbox relay", jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxEventsCommandHandler(),
			c.configs.OutboxRelaySchedule,
			c.configs.OutboxRelayBatch,
			c.logger,
		))
	}
	return jm
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
